package budget

import (
	"fmt"

	"github.com/ling-4j/prosperpath/internal/money"
)

const displayDateLayout = "02/01/2006"

// FormatMessage renders the Vietnamese notification text for e.
func FormatMessage(e *BudgetExceeded) string {
	return fmt.Sprintf(
		"Bạn đã vượt ngân sách %s cho danh mục \"%s\" trong khoảng %s - %s. Số tiền vượt: %s.",
		money.FormatVND(e.Budget.Amount),
		e.Category.Name,
		e.Budget.StartDate.Format(displayDateLayout),
		e.Budget.EndDate.Format(displayDateLayout),
		money.FormatVND(e.Excess),
	)
}
