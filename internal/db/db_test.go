package db_test

import (
	"context"
	"database/sql"
	"ethwallet/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
	Active   bool
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}

	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			// Reset the mock expectations before each test
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("SaveToTable", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM "tests".*`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

			mock.ExpectBegin()

			mock.ExpectQuery(`^INSERT INTO "tests" \("username","active","id"\) VALUES \(\$1,\$2,\$3\),\(\$4,\$5,\$6\) RETURNING "id"$`).
				WithArgs("Alice", false, 1, "Bob", false, 2).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

			mock.ExpectCommit()
		})

		It("should save records without errors", func() {
			err := testDB.SaveToTable(context.Background(), &[]Test{
				{ID: 1, Username: "Alice"},
				{ID: 2, Username: "Bob"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "active"}).
						AddRow(1, "Alice", false))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username IN \(\$1,\$2\).*`).
					WithArgs("Alice", "Bob").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice").
						AddRow(2, "Bob"))
			})

			It("should return all matching records", func() {
				var results []Test
				err := testDB.GetAllBy(context.Background(), "username", []string{"Alice", "Bob"}, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Username).To(Equal("Alice"))
				Expect(results[1].Username).To(Equal("Bob"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(context.Background(), "username", "Invalid", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("SaveToTable on a seeded table", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		})

		It("should leave existing rows untouched", func() {
			err := testDB.SaveToTable(context.Background(), &[]Test{{ID: 3, Username: "Carol"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Insert", func() {
		When("the key is free", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" .* RETURNING "id"$`).
					WithArgs("Alice", true, 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should insert the record", func() {
				err := testDB.Insert(context.Background(), &Test{ID: 1, Username: "Alice", Active: true})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the key is taken", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" .*`).
					WillReturnError(gorm.ErrDuplicatedKey)
				mock.ExpectRollback()
			})

			It("should return ErrDuplicate", func() {
				err := testDB.Insert(context.Background(), &Test{ID: 1, Username: "Alice"})
				Expect(err).To(MatchError(db.ErrDuplicate))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAll", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "tests" ORDER BY id`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "username", "active"}).
					AddRow(1, "Alice", true).
					AddRow(2, "Bob", false))
		})

		It("should return every record in order", func() {
			var results []Test
			err := testDB.GetAll(context.Background(), "id", &results)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].Active).To(BeTrue())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("UpdateBy", func() {
		It("should update matching rows", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE "tests" SET "username"=\$1 WHERE id = \$2`).
				WithArgs("Carol", 1).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			err := testDB.UpdateBy(context.Background(), &Test{}, "id", 1, map[string]any{"username": "Carol"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("should return ErrNotFound when nothing matches", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE "tests" SET "username"=\$1 WHERE id = \$2`).
				WithArgs("Carol", 9).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectCommit()

			err := testDB.UpdateBy(context.Background(), &Test{}, "id", 9, map[string]any{"username": "Carol"})
			Expect(err).To(MatchError(db.ErrNotFound))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("DeleteBy", func() {
		It("should delete matching rows", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM "tests" WHERE username = \$1`).
				WithArgs("Alice").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			err := testDB.DeleteBy(context.Background(), &Test{}, "username", "Alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("should return ErrNotFound when nothing matches", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM "tests" WHERE username = \$1`).
				WithArgs("Ghost").
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectCommit()

			err := testDB.DeleteBy(context.Background(), &Test{}, "username", "Ghost")
			Expect(err).To(MatchError(db.ErrNotFound))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("SelectExclusive", func() {
		It("should move the flag to the matching row", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE "tests" SET "active"=\$1 WHERE active = \$2`).
				WithArgs(false, true).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(`UPDATE "tests" SET "active"=\$1 WHERE id = \$2`).
				WithArgs(true, 2).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			err := testDB.SelectExclusive(context.Background(), &Test{}, "active", "id", 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("should roll back when no row matches", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE "tests" SET "active"=\$1 WHERE active = \$2`).
				WithArgs(false, true).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(`UPDATE "tests" SET "active"=\$1 WHERE id = \$2`).
				WithArgs(true, 7).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectRollback()

			err := testDB.SelectExclusive(context.Background(), &Test{}, "active", "id", 7)
			Expect(err).To(MatchError(db.ErrNotFound))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

})
