package store

import (
	"strings"

	"github.com/LizaButReallyEliza/Formula1-project/models"
)

// assignments collects the SET clause of a partial update.
type assignments struct {
	cols []string
	args []any
}

func setIf[T any](a *assignments, col string, o models.Optional[T]) {
	if !o.Set {
		return
	}
	a.cols = append(a.cols, col+" = ?")
	a.args = append(a.args, o.Arg())
}

func (a *assignments) empty() bool {
	return len(a.cols) == 0
}

// statement builds UPDATE table SET ... WHERE id = ? RETURNING returning.
func (a *assignments) statement(table, returning string, id int64) (string, []any) {
	query := "UPDATE " + table + " SET " + strings.Join(a.cols, ", ") + " WHERE id = ? RETURNING " + returning
	return query, append(a.args, id)
}
