// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package st

import (
	"strconv"
	"strings"
)

const (
	amountNotNative = 1 << 63
	amountPositive  = 1 << 62

	// issued amounts carry 20-byte currency and issuer after the
	// 8-byte value word
	issuedSuffix = 20 + 20

	issuedExponentBias = 97
	issuedMantissaMask = (uint64(1) << 54) - 1
)

// readAmount consumes one serialized amount and returns its textual
// rendering plus the default flag. Native amounts are 8 bytes of
// drops; issued amounts append currency and issuer.
func readAmount(r *Reader) (text string, def bool, err error) {
	v, err := r.ReadU64()
	if err != nil {
		return "", false, err
	}
	if v&amountNotNative == 0 {
		drops := v &^ uint64(amountPositive)
		text = strconv.FormatUint(drops, 10)
		if v&amountPositive == 0 && drops != 0 {
			text = "-" + text
		}
		return text, drops == 0, nil
	}
	if err := r.Skip(issuedSuffix); err != nil {
		return "", false, err
	}
	mantissa := v & issuedMantissaMask
	if mantissa == 0 {
		return "0", true, nil
	}
	exponent := int(v>>54&0xff) - issuedExponentBias
	text = formatDecimal(mantissa, exponent)
	if v&amountPositive == 0 {
		text = "-" + text
	}
	return text, false, nil
}

// formatDecimal renders mantissa*10^exponent without exponent
// notation.
func formatDecimal(mantissa uint64, exponent int) string {
	digits := strconv.FormatUint(mantissa, 10)
	switch {
	case exponent >= 0:
		return digits + strings.Repeat("0", exponent)
	case -exponent < len(digits):
		whole := digits[:len(digits)+exponent]
		frac := strings.TrimRight(digits[len(digits)+exponent:], "0")
		if frac == "" {
			return whole
		}
		return whole + "." + frac
	default:
		frac := strings.TrimRight(strings.Repeat("0", -exponent-len(digits))+digits, "0")
		return "0." + frac
	}
}
