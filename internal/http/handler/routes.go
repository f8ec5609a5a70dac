package handler

var (
	Authenticate   = "POST /wallet/authenticate"
	VerifyPassword = "POST /wallet/verify-password"
	ImportMnemonic = "POST /wallet/import/mnemonic"
	ImportKey      = "POST /wallet/import/key"
	CreateWallet   = "POST /wallet/create"
	CreateAccount  = "POST /wallet/accounts"
	ExportKey      = "POST /wallet/export"
	ListWallets    = "GET /wallet/wallets"
	CurrentWallet  = "GET /wallet/wallets/current"
	SelectWallet   = "POST /wallet/wallets/{id}/select"
	RenameWallet   = "PATCH /wallet/wallets/{id}"
	DeleteWallet   = "DELETE /wallet/wallets/{id}"
	ListKeystores  = "GET /wallet/keystores"

	SendNative = "POST /wallet/send/native"
	SendToken  = "POST /wallet/send/token"

	Balance       = "GET /wallet/balance"
	TokenBalances = "GET /wallet/balances"
	GasPrice      = "GET /wallet/gas-price"
	EstimateGas   = "GET /wallet/estimate-gas"
	Address       = "GET /wallet/address"
	TxStatus      = "GET /wallet/tx/{hash}"

	ListNetworks   = "GET /wallet/networks"
	CurrentNetwork = "GET /wallet/networks/current"
	AddNetwork     = "POST /wallet/networks"
	DeleteNetwork  = "DELETE /wallet/networks/{chainId}"
	SelectNetwork  = "POST /wallet/networks/{chainId}/select"
)
