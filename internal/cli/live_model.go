package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cgpa/internal/cli/formatter"
	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/alexanderramin/cgpa/internal/gpa"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Column order of a live row.
const (
	colCode = iota
	colCredits
	colGrade
	rowFields
)

// The two prior-standing inputs come before the course rows in focus order.
const priorFields = 2

type liveKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	AddRow key.Binding
	DelRow key.Binding
	Save   key.Binding
	Quit   key.Binding
}

func defaultLiveKeys() liveKeyMap {
	return liveKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "enter"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "row up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "row down")),
		AddRow: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add row")),
		DelRow: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete row")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k liveKeyMap) help() string {
	bindings := []key.Binding{k.Next, k.Prev, k.Up, k.Down, k.AddRow, k.DelRow, k.Save, k.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// liveRow is one editable course row. id is empty until the row is saved.
type liveRow struct {
	id     string
	seq    int
	fields [rowFields]textinput.Model
}

func (r liveRow) course() domain.Course {
	grade, _ := domain.ParseGradeSymbol(strings.ToUpper(r.fields[colGrade].Value()))
	return domain.Course{
		ID:          r.id,
		Seq:         r.seq,
		Code:        strings.TrimSpace(r.fields[colCode].Value()),
		CreditHours: domain.Numeric(r.fields[colCredits].Value()),
		Grade:       grade,
	}
}

type liveLoadedMsg struct {
	resp *contract.CalculationResponse
	err  error
}

type liveSavedMsg struct {
	err error
}

// liveModel is the bubbletea Model for "cgpa live". Every keystroke
// recomputes the result from the inputs on screen; nothing is written
// until the user saves.
type liveModel struct {
	app  *App
	keys liveKeyMap

	cgpa    textinput.Model
	credits textinput.Model
	rows    []liveRow
	// removed holds IDs of saved rows deleted since the last save.
	removed []string

	focus  int
	result domain.CalculationResult
	dirty  bool
	status string
	err    error
	width  int

	quitting bool
}

func newLiveModel(app *App) liveModel {
	m := liveModel{
		app:     app,
		keys:    defaultLiveKeys(),
		cgpa:    newLiveInput("3.50", 4),
		credits: newLiveInput("60", 5),
	}
	m.cgpa.Focus()
	return m
}

func newLiveInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = limit + 1
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func newLiveRow(c *domain.Course) liveRow {
	r := liveRow{}
	r.fields[colCode] = newLiveInput("CODE", 10)
	r.fields[colCredits] = newLiveInput("0", 3)
	r.fields[colGrade] = newLiveInput("-", 2)
	if c != nil {
		r.id = c.ID
		r.seq = c.Seq
		r.fields[colCode].SetValue(c.Code)
		r.fields[colCredits].SetValue(string(c.CreditHours))
		r.fields[colGrade].SetValue(string(c.Grade))
	}
	return r
}

func (m liveModel) Init() tea.Cmd {
	return m.load()
}

func (m liveModel) load() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		resp, err := app.Calc.Calculate(context.Background())
		return liveLoadedMsg{resp: resp, err: err}
	}
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case liveLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.applyLoaded(msg.resp)
		return m, nil

	case liveSavedMsg:
		if msg.err != nil {
			m.status = ""
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.dirty = false
		m.removed = nil
		m.status = "Saved"
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *liveModel) applyLoaded(resp *contract.CalculationResponse) {
	m.cgpa.SetValue(string(resp.State.CurrentCGPA))
	m.credits.SetValue(string(resp.State.CreditsEarned))
	m.rows = make([]liveRow, 0, len(resp.Courses))
	for _, c := range resp.Courses {
		m.rows = append(m.rows, newLiveRow(c))
	}
	if len(m.rows) == 0 {
		m.rows = append(m.rows, newLiveRow(nil))
	}
	m.setFocus(m.focus)
	m.recalculate()
}

func (m liveModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		m.status = "Saving..."
		return m, m.save()
	case key.Matches(msg, m.keys.Next):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus(m.focus - 1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.setFocus(m.focus + m.rowStep())
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.setFocus(m.focus - m.rowStep())
		return m, nil
	case key.Matches(msg, m.keys.AddRow):
		m.rows = append(m.rows, newLiveRow(nil))
		m.dirty = true
		m.setFocus(priorFields + (len(m.rows)-1)*rowFields)
		return m, nil
	case key.Matches(msg, m.keys.DelRow):
		m.deleteFocusedRow()
		return m, nil
	}

	input := m.focusedInput()
	if input == nil {
		return m, nil
	}
	before := input.Value()
	updated, cmd := input.Update(msg)
	*input = updated
	if input.Value() != before {
		m.dirty = true
		m.status = ""
		m.recalculate()
	}
	return m, cmd
}

// rowStep moves between the prior inputs and the first row, or by a whole
// row inside the table.
func (m liveModel) rowStep() int {
	if m.focus < priorFields {
		return priorFields
	}
	return rowFields
}

func (m *liveModel) fieldCount() int {
	return priorFields + len(m.rows)*rowFields
}

func (m *liveModel) setFocus(i int) {
	n := m.fieldCount()
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	m.focus = i

	m.cgpa.Blur()
	m.credits.Blur()
	for r := range m.rows {
		for c := range m.rows[r].fields {
			m.rows[r].fields[c].Blur()
		}
	}
	if in := m.focusedInput(); in != nil {
		in.Focus()
	}
}

func (m *liveModel) focusedInput() *textinput.Model {
	switch {
	case m.focus == 0:
		return &m.cgpa
	case m.focus == 1:
		return &m.credits
	}
	i := m.focus - priorFields
	row, col := i/rowFields, i%rowFields
	if row >= len(m.rows) {
		return nil
	}
	return &m.rows[row].fields[col]
}

func (m *liveModel) deleteFocusedRow() {
	if m.focus < priorFields || len(m.rows) == 0 {
		return
	}
	row := (m.focus - priorFields) / rowFields
	if id := m.rows[row].id; id != "" {
		m.removed = append(m.removed, id)
	}
	m.rows = append(m.rows[:row], m.rows[row+1:]...)
	if len(m.rows) == 0 {
		m.rows = append(m.rows, newLiveRow(nil))
	}
	m.dirty = true
	m.setFocus(m.focus)
	m.recalculate()
}

func (m *liveModel) state() domain.AcademicState {
	return domain.AcademicState{
		CurrentCGPA:   domain.Numeric(m.cgpa.Value()),
		CreditsEarned: domain.Numeric(m.credits.Value()),
	}
}

func (m *liveModel) recalculate() {
	courses := make([]domain.Course, 0, len(m.rows))
	for _, r := range m.rows {
		courses = append(courses, r.course())
	}
	m.result = gpa.Calculate(courses, m.state())
}

// save snapshots the screen and writes it as one table. Rows go in screen
// order so new rows take the next sequence numbers. A rejected save writes
// nothing, so the same edits can be fixed and saved again.
func (m liveModel) save() tea.Cmd {
	app := m.app
	in := contract.TableInput{
		State:   contract.StateInput{CurrentCGPA: m.cgpa.Value(), CreditsEarned: m.credits.Value()},
		Rows:    make([]contract.TableRow, 0, len(m.rows)),
		Removed: append([]string(nil), m.removed...),
	}
	for _, r := range m.rows {
		code := r.fields[colCode].Value()
		credits := r.fields[colCredits].Value()
		grade := r.fields[colGrade].Value()
		in.Rows = append(in.Rows, contract.TableRow{
			ID:          r.id,
			CourseInput: contract.CourseInput{Code: &code, CreditHours: &credits, Grade: &grade},
		})
	}

	return func() tea.Msg {
		return liveSavedMsg{err: app.Calc.SaveTable(context.Background(), in)}
	}
}

func (m liveModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Live calculator") + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n\n",
		formatter.Dim("Prior CGPA"), m.cgpa.View(),
		formatter.Dim("Credits earned"), m.credits.View(),
	))

	headers := []string{"#", "CODE", "CREDITS", "GRADE", "POINTS"}
	rows := make([][]string, 0, len(m.rows))
	for i, r := range m.rows {
		c := r.course()
		points := formatter.Dim("--")
		if credits, ok := c.Credits(); ok {
			points = fmt.Sprintf("%.2f", credits*domain.GradePoint(c.Grade))
		}
		rows = append(rows, []string{
			formatter.SeqLabel(i + 1),
			r.fields[colCode].View(),
			markInvalid(r.fields[colCredits], validCredits),
			markInvalid(r.fields[colGrade], validGrade),
			points,
		})
	}
	b.WriteString(formatter.RenderTable(headers, rows) + "\n")

	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		formatter.Dim("GPA"), formatter.GPA(m.result.GPA),
		formatter.Dim("CGPA"), formatter.GPA(m.result.CGPA),
		formatter.Dim("Credits"), formatter.Credits(m.result.TotalCredits),
	))
	b.WriteString(formatter.RenderGPABar(m.result.CGPA, 24) + "\n")
	b.WriteString(formatter.StandingPill(gpa.StandingFor(m.result.GPA)) + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(formatter.StyleGreen.Render(m.status) + "\n")
	case m.dirty:
		b.WriteString(formatter.StyleYellow.Render("Unsaved changes") + "\n")
	}
	b.WriteString(formatter.Dim(m.keys.help()))
	return b.String()
}

func validCredits(s string) bool {
	return strings.TrimSpace(s) == "" || gpa.IsValidCreditHours(domain.Numeric(s))
}

func validGrade(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, ok := domain.ParseGradeSymbol(strings.ToUpper(s))
	return ok
}

func markInvalid(in textinput.Model, valid func(string) bool) string {
	if valid(in.Value()) {
		return in.View()
	}
	return in.View() + formatter.StyleRed.Render("!")
}
