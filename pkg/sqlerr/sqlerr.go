// Package sqlerr turns driver errors from sqlite and postgres into
// errs.Error values with a message fit for the user.
package sqlerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"fazenda/pkg/errs"
)

// Code is the normalized constraint category.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
)

// sqlite extended result codes.
const (
	sqliteCheck      = 275
	sqliteForeignKey = 787
	sqliteNotNull    = 1299
	sqlitePrimaryKey = 1555
	sqliteUnique     = 2067
)

// Violation describes a constraint failure extracted from a driver error.
type Violation struct {
	Code       Code
	Table      string
	Column     string
	Constraint string
}

// labels maps column and table names to the words shown to users.
var labels = map[string]string{
	"tax_id":       "tax ID",
	"email":        "email",
	"username":     "username",
	"owners":       "owner",
	"properties":   "property",
	"animals":      "animal",
	"lots":         "lot",
	"crops":        "crop",
	"cultivations": "cultivation",
	"users":        "user",
	"owner_id":     "owner",
	"property_id":  "property",
	"animal_id":    "animal",
	"crop_id":      "crop",
	"user_id":      "user",

	"total_area_ha":      "total area",
	"cultivated_area_ha": "cultivated area",
}

// checks maps named check constraints to the column they guard.
var checks = map[string]string{
	"chk_property_area":    "total_area_ha",
	"chk_cultivation_area": "cultivated_area_ha",
	"chk_lot_quantity":     "quantity",
}

var (
	sqliteColumnRX = regexp.MustCompile(`constraint failed: ([A-Za-z0-9_]+)\.([A-Za-z0-9_]+)`)
	sqliteNameRX   = regexp.MustCompile(`CHECK constraint failed: ([A-Za-z0-9_]+)`)
)

// Translate converts err into an *errs.Error. refs names the entities a
// foreign key of the failing statement points to; it is used when the
// driver does not report which column failed.
func Translate(err error, refs ...string) error {
	if err == nil {
		return nil
	}
	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &errs.Error{Kind: errs.KindNotFound, Message: "record not found", Err: err}
	}
	v, ok := Classify(err)
	if !ok {
		return errs.Storage(err)
	}
	return errs.Constraint(message(v, refs), err)
}

// Classify extracts constraint details from err.
func Classify(err error) (Violation, bool) {
	if err == nil {
		return Violation{}, false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		v := Violation{
			Code:       mapSQLState(pgErr.Code),
			Table:      pgErr.TableName,
			Column:     pgErr.ColumnName,
			Constraint: pgErr.ConstraintName,
		}
		if v.Column == "" {
			v.Column = columnFromConstraint(v.Table, v.Constraint)
		}
		return v, v.Code != Other
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Violation{Code: UniqueViolation}, true
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Violation{Code: ForeignKeyViolation}, true
	}

	v := Violation{Code: sqliteCode(err)}
	msg := err.Error()
	if v.Code == Other {
		v.Code = codeFromMessage(msg)
	}
	if v.Code == Other {
		return v, false
	}
	if m := sqliteColumnRX.FindStringSubmatch(msg); m != nil {
		v.Table, v.Column = m[1], m[2]
	}
	if v.Code == CheckViolation {
		if m := sqliteNameRX.FindStringSubmatch(msg); m != nil {
			v.Constraint = m[1]
			v.Column = checks[v.Constraint]
		}
	}
	return v, true
}

func mapSQLState(code string) Code {
	switch code {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	}
	return Other
}

// sqliteCode reads the extended result code from sqlite driver errors,
// which expose it through a Code() int method.
func sqliteCode(err error) Code {
	var coder interface{ Code() int }
	if !errors.As(err, &coder) {
		return Other
	}
	switch coder.Code() {
	case sqliteUnique, sqlitePrimaryKey:
		return UniqueViolation
	case sqliteForeignKey:
		return ForeignKeyViolation
	case sqliteNotNull:
		return NotNullViolation
	case sqliteCheck:
		return CheckViolation
	}
	return Other
}

func codeFromMessage(msg string) Code {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "unique constraint failed"):
		return UniqueViolation
	case strings.Contains(lower, "foreign key constraint failed"):
		return ForeignKeyViolation
	case strings.Contains(lower, "not null constraint failed"):
		return NotNullViolation
	case strings.Contains(lower, "check constraint failed"):
		return CheckViolation
	}
	return Other
}

// columnFromConstraint recovers the column from GORM index names
// (idx_<table>_<column>) and named checks.
func columnFromConstraint(table, constraint string) string {
	if col, ok := checks[constraint]; ok {
		return col
	}
	if table != "" && strings.HasPrefix(constraint, "idx_"+table+"_") {
		return strings.TrimPrefix(constraint, "idx_"+table+"_")
	}
	if table != "" && strings.HasPrefix(constraint, table+"_") && strings.HasSuffix(constraint, "_key") {
		return strings.TrimSuffix(strings.TrimPrefix(constraint, table+"_"), "_key")
	}
	return ""
}

func message(v Violation, refs []string) string {
	switch v.Code {
	case UniqueViolation:
		entity := label(v.Table)
		if entity == "" {
			entity = "record"
		}
		field := label(v.Column)
		if field == "" {
			field = "identifier"
		}
		return fmt.Sprintf("%s %s with this %s already exists", article(entity), entity, field)
	case ForeignKeyViolation:
		ref := label(v.Column)
		if ref == "" && len(refs) > 0 {
			ref = strings.Join(refs, " or ")
		}
		if ref == "" {
			ref = "record"
		}
		return fmt.Sprintf("The referenced %s does not exist", ref)
	case NotNullViolation:
		field := label(v.Column)
		if field == "" {
			field = "field"
		}
		return fmt.Sprintf("The %s is required", field)
	case CheckViolation:
		if field := label(v.Column); field != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", field)
		}
		return "One or more values do not meet required conditions"
	}
	return "An error occurred while processing your request"
}

func label(name string) string {
	if name == "" {
		return ""
	}
	if l, ok := labels[name]; ok {
		return l
	}
	return cases.Lower(language.English).String(strings.ReplaceAll(name, "_", " "))
}

func article(word string) string {
	if word != "" && strings.ContainsRune("aeiou", rune(word[0])) {
		return "An"
	}
	return "A"
}
