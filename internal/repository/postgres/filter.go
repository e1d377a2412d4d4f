package postgres

import (
	"fmt"
	"strings"

	"og-team-ms/internal/entities"
)

const selectTasksBaseQuery = "SELECT " + taskColumns + " FROM tasks t LEFT JOIN users r ON r.id = t.responsible_id"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildTaskFilter renders the filter as a WHERE clause ANDing every supplied
// field. An empty filter yields no clause.
func buildTaskFilter(f entities.TaskFilter) (string, []any) {
	conds := make([]string, 0, 4)
	args := make([]any, 0, 4)
	add := func(expr string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if f.Name != nil {
		add("t.name ILIKE $%d", "%"+likeEscaper.Replace(*f.Name)+"%")
	}
	if f.Responsible != nil {
		add("r.username = $%d", *f.Responsible)
	}
	if f.Status != nil {
		add("t.status = $%d", string(*f.Status))
	}
	if f.ProjectID != nil {
		add("t.project_id = $%d", *f.ProjectID)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func taskListQuery(f entities.TaskFilter) (string, []any) {
	where, args := buildTaskFilter(f)
	return selectTasksBaseQuery + where + " ORDER BY t.id", args
}
