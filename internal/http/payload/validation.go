package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var (
	addressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	txHashRegex  = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
	amountRegex  = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)
	chainIDRegex = regexp.MustCompile(`^[1-9][0-9]*$`)
)

var (
	addressRule  = validation.Match(addressRegex).Error("must be a 0x prefixed 20 byte hex address")
	amountRule   = validation.Match(amountRegex).Error("must be a non-negative decimal number")
	passwordRule = validation.Length(1, 1024)
	nameRule     = validation.Length(0, 255)
)
