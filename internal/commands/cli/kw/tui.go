package kw

import (
	"fmt"
	"strings"

	"github.com/andrei-cloud/go_keywrap/internal/encoding"
	"github.com/andrei-cloud/go_keywrap/internal/logging"
	"github.com/andrei-cloud/go_keywrap/pkg/keywrap"
	"github.com/awnumar/memguard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	fieldTypeRadio = iota
	fieldTypeHex
)

const (
	operationWrap   = "wrap"
	operationUnwrap = "unwrap"
)

type option struct {
	value       string
	description string
}

type fieldConfig struct {
	name        string
	description string
	fieldType   int
	options     []option // For radio fields.
	selected    int      // For radio fields.
	hexValue    string   // For hex fields.
	maxDigits   int      // For hex fields.
}

// wrapResult is the outcome of the operation submitted from the form.
type wrapResult struct {
	operation string
	policy    keywrap.LengthPolicy
	kekLen    int
	inputLen  int
	output    string
	verified  bool
	err       error
}

type wrapModel struct {
	currentField int
	fields       []fieldConfig
	result       wrapResult
	done         bool
	cancelled    bool
}

// newWrapModel creates a new TUI model for a single wrap or unwrap operation.
func newWrapModel() wrapModel {
	fields := []fieldConfig{
		{
			name:        "Operation",
			description: "Key Wrap Operation",
			fieldType:   fieldTypeRadio,
			options: []option{
				{operationWrap, "Wrap a key under the KEK"},
				{operationUnwrap, "Unwrap and verify a wrapped key"},
			},
		},
		{
			name:        "Policy",
			description: "Key Length Policy",
			fieldType:   fieldTypeRadio,
			options: []option{
				{keywrap.StrictPolicy.String(), "Key length must equal KEK length"},
				{keywrap.GeneralPolicy.String(), "Any multiple of 8 bytes, at least 16"},
			},
		},
		{
			name:        "KEK",
			description: "Key-Encrypting Key (32, 48 or 64 hex digits)",
			fieldType:   fieldTypeHex,
			maxDigits:   64,
		},
		{
			name:        "Input",
			description: "Key to wrap, or wrapped key to unwrap (hex)",
			fieldType:   fieldTypeHex,
			maxDigits:   512,
		},
	}

	return wrapModel{
		currentField: 0,
		fields:       fields,
	}
}

// Init initializes the model.
func (m wrapModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m wrapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	currentField := &m.fields[m.currentField]

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true

		return m, tea.Quit
	case "enter":
		if m.currentField >= len(m.fields)-1 {
			m.result = m.submit()
			m.done = true

			return m, tea.Quit
		}
		m.currentField++
	case "tab":
		if m.currentField < len(m.fields)-1 {
			m.currentField++
		}
	case "shift+tab":
		if m.currentField > 0 {
			m.currentField--
		}
	case "up", "k":
		if currentField.fieldType == fieldTypeRadio && currentField.selected > 0 {
			currentField.selected--
		}
	case "down", "j":
		if currentField.fieldType == fieldTypeRadio &&
			currentField.selected < len(currentField.options)-1 {
			currentField.selected++
		}
	case "backspace":
		if currentField.fieldType == fieldTypeHex && currentField.hexValue != "" {
			currentField.hexValue = currentField.hexValue[:len(currentField.hexValue)-1]
		}
	default:
		if currentField.fieldType == fieldTypeHex && keyMsg.Type == tea.KeyRunes {
			for _, r := range keyMsg.Runes {
				m.handleHexInput(r)
			}
		}
	}

	return m, nil
}

// handleHexInput appends a hex digit to the current field, ignoring anything else.
func (m *wrapModel) handleHexInput(r rune) {
	currentField := &m.fields[m.currentField]
	if currentField.fieldType != fieldTypeHex || len(currentField.hexValue) >= currentField.maxDigits {
		return
	}

	switch {
	case r >= '0' && r <= '9', r >= 'A' && r <= 'F':
		currentField.hexValue += string(r)
	case r >= 'a' && r <= 'f':
		currentField.hexValue += string(r - 'a' + 'A')
	}
}

// selected returns the chosen option value of a radio field.
func (m wrapModel) selected(name string) string {
	for _, field := range m.fields {
		if field.name == name && field.fieldType == fieldTypeRadio {
			return field.options[field.selected].value
		}
	}

	return ""
}

// hexValue returns the text of a hex field.
func (m wrapModel) hexValue(name string) string {
	for _, field := range m.fields {
		if field.name == name && field.fieldType == fieldTypeHex {
			return field.hexValue
		}
	}

	return ""
}

// submit runs the selected operation against the form values.
// The result is rendered with the configured output encoding.
func (m wrapModel) submit() wrapResult {
	res := wrapResult{operation: m.selected("Operation")}

	s, err := loadSettings()
	if err != nil {
		res.err = err

		return res
	}

	policy, err := keywrap.ParsePolicy(m.selected("Policy"))
	if err != nil {
		res.err = err

		return res
	}
	res.policy = policy

	kek, err := encoding.Decode(m.hexValue("KEK"), encoding.Hex)
	if err != nil {
		res.err = fmt.Errorf("KEK: %w", err)

		return res
	}
	defer memguard.WipeBytes(kek)

	input, err := encoding.Decode(m.hexValue("Input"), encoding.Hex)
	if err != nil {
		res.err = fmt.Errorf("input: %w", err)

		return res
	}
	defer memguard.WipeBytes(input)

	res.kekLen = len(kek)
	res.inputLen = len(input)

	e := keywrap.New(keywrap.WithLengthPolicy(policy))
	var out []byte
	switch res.operation {
	case operationUnwrap:
		out, res.verified, res.err = e.Unwrap(input, kek)
	default:
		out, res.err = e.Wrap(input, kek)
		res.verified = res.err == nil
	}
	if out == nil {
		return res
	}
	defer memguard.WipeBytes(out)

	if res.output, err = encoding.Encode(out, s.encoding, s.upper); err != nil {
		res.err = err
		res.verified = false
	}

	return res
}

// View renders the current state of the model.
func (m wrapModel) View() string {
	if m.cancelled {
		return "Operation cancelled.\n"
	}

	if m.done {
		return m.result.render()
	}

	s := "AES Key Wrap (RFC 3394)\n"
	s += strings.Repeat("=", 50) + "\n\n"

	// Show progress.
	s += fmt.Sprintf("Field %d of %d\n\n", m.currentField+1, len(m.fields))

	// Show current field.
	currentField := m.fields[m.currentField]
	s += fmt.Sprintf("▶ %s: %s\n\n", currentField.name, currentField.description)

	if currentField.fieldType == fieldTypeRadio {
		for j, option := range currentField.options {
			selector := "  ○ "
			if j == currentField.selected {
				selector = "  ● "
			}
			s += fmt.Sprintf("%s%s - %s\n", selector, option.value, option.description)
		}
	} else {
		s += fmt.Sprintf("  [ %s ] (%d/%d digits)\n",
			currentField.hexValue, len(currentField.hexValue), currentField.maxDigits)
	}

	s += "\n"

	// Show summary of completed fields. Hex values are masked.
	if m.currentField > 0 {
		s += "Completed fields:\n"
		for i := 0; i < m.currentField; i++ {
			field := m.fields[i]
			if field.fieldType == fieldTypeRadio {
				s += fmt.Sprintf("  %s: %s\n", field.name, field.options[field.selected].value)
			} else {
				s += fmt.Sprintf("  %s: %d bytes\n", field.name, len(field.hexValue)/2)
			}
		}
		s += "\n"
	}

	s += "Navigation:\n"
	s += "  Tab/Shift+Tab: Next/Previous field\n"
	s += "  Enter: Confirm and continue\n"
	if currentField.fieldType == fieldTypeRadio {
		s += "  ↑/↓ or j/k: Select option\n"
	} else {
		s += "  0-9, A-F: Hex input\n"
		s += "  Backspace: Delete digit\n"
	}
	s += "  q, Esc or Ctrl+C: Quit\n"

	return s
}

func (r wrapResult) render() string {
	switch {
	case r.err != nil:
		return fmt.Sprintf("Error: %v\n", r.err)
	case r.operation == operationUnwrap && !r.verified:
		return "Integrity: FAILED\n"
	case r.operation == operationUnwrap:
		return fmt.Sprintf("Key: %s\nIntegrity: OK\n", r.output)
	default:
		return fmt.Sprintf("Wrapped Key: %s\n", r.output)
	}
}

func newInteractiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Wrap or unwrap a key in an interactive form",
		RunE:  runInteractive,
	}
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	p := tea.NewProgram(
		newWrapModel(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}

	m := finalModel.(wrapModel)
	if m.cancelled || !m.done {
		return nil
	}

	return m.result.report(uuid.NewString())
}

// report logs the outcome and converts failures into command errors.
func (r wrapResult) report(operationID string) error {
	if r.err != nil {
		return fail(operationID, r.operation, r.err)
	}

	switch {
	case r.operation == operationUnwrap && !r.verified:
		logging.LogOperation(operationID, logging.EventIntegrityFailed,
			r.policy.String(), r.kekLen, r.inputLen, 0)

		return fail(operationID, r.operation, keywrap.ErrIntegrityCheckFailed)
	case r.operation == operationUnwrap:
		logging.LogOperation(operationID, logging.EventKeyUnwrapped,
			r.policy.String(), r.kekLen, r.inputLen, r.inputLen-8)
	default:
		logging.LogOperation(operationID, logging.EventKeyWrapped,
			r.policy.String(), r.kekLen, r.inputLen, r.inputLen+8)
	}

	return nil
}
