package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "taskforge.com/taskforge/internal/data_models"
	model "taskforge.com/taskforge/internal/models"
)

// Sortable lists the columns a task page may be ordered by.
var Sortable = map[string]bool{
	"title":      true,
	"due_date":   true,
	"priority":   true,
	"created_at": true,
	"position":   true,
}

// priorityRank orders high before medium before low when ascending.
const priorityRank = "CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 END"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *TaskRepository) filtered(tx *gorm.DB, ownerID uint, q dto.TaskQuery, due *dto.DueRange) *gorm.DB {
	tx = tx.Model(&model.Task{}).Where("user_id = ?", ownerID)

	if q.ListID != nil {
		tx = tx.Where("list_id = ?", *q.ListID)
	} else if q.WithoutList {
		tx = tx.Where("list_id IS NULL")
	}

	if q.Completed != nil {
		tx = tx.Where("completed = ?", *q.Completed)
	}

	if q.Priority != nil {
		tx = tx.Where("priority = ?", string(*q.Priority))
	}

	if q.Search != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(q.Search)) + "%"
		tx = tx.Where(
			r.db.Where(`LOWER(title) LIKE ? ESCAPE '\'`, like).
				Or(`LOWER(description) LIKE ? ESCAPE '\'`, like),
		)
	}

	if due != nil {
		if due.From != nil {
			tx = tx.Where("due_date >= ?", *due.From)
		}
		if due.Until != nil {
			tx = tx.Where("due_date < ?", *due.Until)
		}
		if due.Before != nil {
			tx = tx.Where("due_date < ?", *due.Before)
		}
		if due.ExcludeCompleted {
			tx = tx.Where("completed = ?", false)
		}
	}

	return tx
}

// sorted applies the requested order. Unknown sort fields add no ORDER BY at all.
func sorted(tx *gorm.DB, q dto.TaskQuery) *gorm.DB {
	if !Sortable[q.Sort] {
		return tx
	}

	if q.Sort == "priority" {
		// Descending means most urgent first, so the rank runs the other way.
		dir := "DESC"
		if q.Descending {
			dir = "ASC"
		}
		tx = tx.Order(priorityRank + " " + dir)
	} else {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: q.Sort}, Desc: q.Descending})
	}

	return tx.Order("id ASC")
}

func withIncludes(tx *gorm.DB, inc dto.Includes) *gorm.DB {
	if inc.List {
		tx = tx.Preload("TaskList", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "color")
		})
	}
	if inc.Tags {
		tx = tx.Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Select("tags.id", "tags.name", "tags.color").Order("tags.name")
		})
	}
	return tx
}
