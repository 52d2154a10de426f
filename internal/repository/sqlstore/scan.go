package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/minjaeee24/JDBC-Workspace/internal/domain"
)

// memberColumns are the columns every member query must return. They are
// matched by name, so statements may select them in any order or use *.
var memberColumns = []string{
	"user_no", "user_id", "user_pwd", "user_name", "gender", "age",
	"email", "phone", "address", "hobby", "enroll_date",
}

type memberRow struct {
	id       int64
	loginID  string
	password string
	name     string
	gender   string
	age      int64
	email    sql.NullString
	phone    sql.NullString
	address  sql.NullString
	hobby    sql.NullString
	enrolled enrollDate
}

// targets maps result columns onto row fields. Extra columns are discarded.
func (r *memberRow) targets(columns []string) ([]any, error) {
	dest := make([]any, len(columns))
	seen := make(map[string]bool, len(columns))
	for i, col := range columns {
		name := strings.ToLower(col)
		seen[name] = true
		switch name {
		case "user_no":
			dest[i] = &r.id
		case "user_id":
			dest[i] = &r.loginID
		case "user_pwd":
			dest[i] = &r.password
		case "user_name":
			dest[i] = &r.name
		case "gender":
			dest[i] = &r.gender
		case "age":
			dest[i] = &r.age
		case "email":
			dest[i] = &r.email
		case "phone":
			dest[i] = &r.phone
		case "address":
			dest[i] = &r.address
		case "hobby":
			dest[i] = &r.hobby
		case "enroll_date":
			dest[i] = &r.enrolled
		default:
			dest[i] = new(any)
		}
	}

	var missing []string
	for _, col := range memberColumns {
		if !seen[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("result is missing member columns: %s", strings.Join(missing, ", "))
	}
	return dest, nil
}

func (r *memberRow) member() domain.Member {
	return domain.Member{
		ID:         r.id,
		LoginID:    r.loginID,
		Password:   r.password,
		Name:       r.name,
		Gender:     strings.TrimSpace(r.gender),
		Age:        int(r.age),
		Email:      r.email.String,
		Phone:      r.phone.String,
		Address:    r.address.String,
		Hobby:      r.hobby.String,
		EnrolledAt: r.enrolled.Time,
	}
}

var enrollDateLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// enrollDate accepts the native time values drivers return as well as the
// text form SQLite keeps for CURRENT_TIMESTAMP defaults.
type enrollDate struct {
	time.Time
}

func (d *enrollDate) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		return errors.New("enroll_date is null")
	default:
		return fmt.Errorf("unsupported enroll_date type %T", src)
	}
}

func (d *enrollDate) parse(s string) error {
	for _, layout := range enrollDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized enroll_date %q", s)
}
