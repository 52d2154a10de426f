// Package console renders the member registry's text menu.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minjaeee24/JDBC-Workspace/internal/domain"
)

// Registry is the request router the menu talks to.
type Registry interface {
	Register(ctx context.Context, m *domain.Member) (int64, error)
	List(ctx context.Context) ([]domain.Member, error)
	FindByLoginID(ctx context.Context, loginID string) (*domain.Member, error)
	SearchByName(ctx context.Context, keyword string) ([]domain.Member, error)
}

// errInputClosed signals that the input stream ended mid-prompt.
var errInputClosed = errors.New("input closed")

// Menu reads commands line by line and writes results as plain text.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	members Registry
}

// NewMenu creates a Menu reading from in and writing to out.
func NewMenu(in io.Reader, out io.Writer, members Registry) *Menu {
	return &Menu{in: bufio.NewScanner(in), out: out, members: members}
}

// Run shows the main menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printf("\n***** Member Registry *****\n")
		m.printf("1. Add member\n")
		m.printf("2. List all members\n")
		m.printf("3. Find member by login id\n")
		m.printf("4. Search members by name\n")
		m.printf("5. Update member\n")
		m.printf("6. Delete member\n")
		m.printf("0. Exit\n")
		m.printf("---------------------------------\n")

		choice, err := m.prompt("Select a menu: ")
		if err != nil {
			return m.finish(err)
		}

		switch choice {
		case "1":
			err = m.insertMember(ctx)
		case "2":
			m.selectAll(ctx)
		case "3":
			err = m.selectByLoginID(ctx)
		case "4":
			err = m.selectByName(ctx)
		case "5", "6":
			m.printf("This menu is not supported yet.\n")
		case "0":
			m.printf("Exiting the program.\n")
			return nil
		default:
			m.printf("Invalid choice. Please try again.\n")
		}
		if err != nil {
			return m.finish(err)
		}
	}
}

func (m *Menu) insertMember(ctx context.Context) error {
	m.printf("---- Add member ----\n")

	var c domain.Member
	var err error
	fields := []struct {
		label string
		dest  *string
	}{
		{"Login id: ", &c.LoginID},
		{"Password: ", &c.Password},
		{"Name: ", &c.Name},
	}
	for _, f := range fields {
		if *f.dest, err = m.prompt(f.label); err != nil {
			return err
		}
	}

	gender, err := m.prompt("Gender (M/F): ")
	if err != nil {
		return err
	}
	if r := []rune(strings.ToUpper(gender)); len(r) > 0 {
		c.Gender = string(r[0])
	}

	if c.Age, err = m.promptInt("Age: "); err != nil {
		return err
	}

	rest := []struct {
		label string
		dest  *string
	}{
		{"Email: ", &c.Email},
		{"Phone (digits only): ", &c.Phone},
		{"Address: ", &c.Address},
		{"Hobbies (comma separated, no spaces): ", &c.Hobby},
	}
	for _, f := range rest {
		if *f.dest, err = m.prompt(f.label); err != nil {
			return err
		}
	}

	if _, err := m.members.Register(ctx, &c); err != nil {
		m.displayFailure("add member", err)
		return nil
	}
	m.printf("Member %s added successfully.\n", c.LoginID)
	return nil
}

func (m *Menu) selectAll(ctx context.Context) {
	m.printf("---------- All members ----------\n")

	members, err := m.members.List(ctx)
	if err != nil {
		m.displayFailure("list members", err)
		return
	}
	if len(members) == 0 {
		m.displayNoData("There are no members.")
		return
	}
	m.displayList(members)
}

func (m *Menu) selectByLoginID(ctx context.Context) error {
	loginID, err := m.prompt("Login id to find: ")
	if err != nil {
		return err
	}

	member, err := m.members.FindByLoginID(ctx, loginID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		m.displayNoData(fmt.Sprintf("No member with login id %s.", loginID))
	case err != nil:
		m.displayFailure("find member", err)
	default:
		m.printf("%s\n", member)
	}
	return nil
}

func (m *Menu) selectByName(ctx context.Context) error {
	keyword, err := m.prompt("Name keyword: ")
	if err != nil {
		return err
	}

	members, err := m.members.SearchByName(ctx, keyword)
	if err != nil {
		m.displayFailure("search members", err)
		return nil
	}
	if len(members) == 0 {
		m.displayNoData(fmt.Sprintf("No member name contains %q.", keyword))
		return nil
	}
	m.displayList(members)
	return nil
}

func (m *Menu) displayNoData(message string) {
	m.printf("%s\n", message)
}

func (m *Menu) displayList(members []domain.Member) {
	m.printf("\n%d member(s) found.\n", len(members))
	for _, member := range members {
		m.printf("%s\n", member)
	}
}

// displayFailure reports an operation failure, worded so it cannot be
// confused with an empty result.
func (m *Menu) displayFailure(action string, err error) {
	var reason string
	switch {
	case errors.Is(err, domain.ErrDuplicateLoginID):
		reason = "that login id is already taken"
	case errors.Is(err, domain.ErrInvalidInput):
		reason = err.Error()
	case errors.Is(err, domain.ErrConnection):
		reason = "the database is unavailable"
	case errors.Is(err, domain.ErrConfigurationLoad):
		reason = "the query for this request is not configured"
	case errors.Is(err, domain.ErrStatement):
		reason = "the database rejected the request"
	default:
		reason = err.Error()
	}
	m.printf("Failed to %s: %s.\n", action, reason)
}

func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// promptInt asks until the answer parses as a non-negative integer.
func (m *Menu) promptInt(label string) (int, error) {
	for {
		text, err := m.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err == nil && n >= 0 {
			return n, nil
		}
		m.printf("Please enter a whole number of 0 or more.\n")
	}
}

func (m *Menu) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		m.printf("\n")
		return nil
	}
	return err
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
