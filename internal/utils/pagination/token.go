package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/fundbooks/fundbooks/internal/core/domain"
)

// EncodeToken creates a base64 keyset-pagination token from a voucher date
// and voucher number. Voucher listings page in (date, voucherNo) order.
func EncodeToken(date domain.Date, voucherNo int64) string {
	tokenStr := fmt.Sprintf("%s|%d", date.String(), voucherNo)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token back into its voucher date and voucher number.
func DecodeToken(token string) (domain.Date, int64, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return domain.Date{}, 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return domain.Date{}, 0, fmt.Errorf("invalid pagination token format (split)")
	}
	date, err := domain.ParseDate(parts[0])
	if err != nil {
		return domain.Date{}, 0, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	voucherNo, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return domain.Date{}, 0, fmt.Errorf("invalid pagination token format (voucher number parse): %w", err)
	}
	return date, voucherNo, nil
}
