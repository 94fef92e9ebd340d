package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/strataconf/strata/internal/core/value"
	"github.com/strataconf/strata/internal/infrastructure/envconf"
)

// NewInitCommand creates the init command, an interactive wizard that
// writes a starter configuration file.
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactively create a starter configuration file",
		Long: `Launch an interactive wizard that creates a starter <name>.json in the
current directory and shows the environment variable names that will
override each of its keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			program := tea.NewProgram(newInitModel())
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("init wizard failed: %w", err)
			}
			m, ok := final.(initModel)
			if ok && m.err != nil {
				return m.err
			}
			return nil
		},
	}
}

type initStep int

const (
	stepName initStep = iota
	stepPrefix
	stepConfirm
	stepDone
)

var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))

	wizardHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	wizardOkStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))
)

// starterConfig is the tree written for a fresh project.
func starterConfig() value.Value {
	return value.Object(map[string]value.Value{
		"environment": value.String("development"),
		"log-level":   value.String("info"),
		"server": value.Object(map[string]value.Value{
			"host": value.String("localhost"),
			"port": value.Int(8080),
		}),
	})
}

// initModel holds the state for the init wizard.
type initModel struct {
	step    initStep
	name    textinput.Model
	prefix  textinput.Model
	written string
	err     error
}

func newInitModel() initModel {
	name := textinput.New()
	name.Placeholder = "myapp"
	name.Focus()
	name.CharLimit = 64

	prefix := textinput.New()
	prefix.Placeholder = "(defaults to the name, uppercased)"
	prefix.CharLimit = 64

	return initModel{step: stepName, name: name, prefix: prefix}
}

// Init implements the Bubble Tea init method.
func (m initModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements the Bubble Tea update method.
func (m initModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			switch m.step {
			case stepName:
				if strings.TrimSpace(m.name.Value()) == "" {
					return m, nil
				}
				m.step = stepPrefix
				m.name.Blur()
				m.prefix.Focus()
				return m, nil
			case stepPrefix:
				m.step = stepConfirm
				m.prefix.Blur()
				return m, nil
			case stepConfirm:
				m.written, m.err = m.writeFile()
				m.step = stepDone
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	switch m.step {
	case stepName:
		m.name, cmd = m.name.Update(msg)
	case stepPrefix:
		m.prefix, cmd = m.prefix.Update(msg)
	}
	return m, cmd
}

// View implements the Bubble Tea view method.
func (m initModel) View() string {
	var b strings.Builder
	b.WriteString(wizardTitleStyle.Render("strata init"))
	b.WriteString("\n\n")

	switch m.step {
	case stepName:
		b.WriteString("Configuration name:\n")
		b.WriteString(m.name.View())
		b.WriteString("\n")
		b.WriteString(wizardHintStyle.Render("File discovery and the default env prefix derive from this name."))
	case stepPrefix:
		b.WriteString("Environment variable prefix (optional):\n")
		b.WriteString(m.prefix.View())
		b.WriteString("\n")
		b.WriteString(wizardHintStyle.Render("Press enter to accept the default."))
	case stepConfirm:
		b.WriteString(fmt.Sprintf("Write %s.json with starter keys?\n\n", m.configName()))
		b.WriteString("Environment overrides for the starter keys:\n")
		for _, line := range m.envExamples() {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
		b.WriteString(wizardHintStyle.Render("enter: write file • esc: cancel"))
	case stepDone:
		if m.err != nil {
			b.WriteString(fmt.Sprintf("Error: %v", m.err))
		} else {
			b.WriteString(wizardOkStyle.Render("Wrote " + m.written))
		}
	}

	b.WriteString("\n")
	return b.String()
}

func (m initModel) configName() string {
	return strings.TrimSpace(m.name.Value())
}

func (m initModel) envPrefix() string {
	if p := strings.TrimSpace(m.prefix.Value()); p != "" {
		return p
	}
	return m.configName()
}

// envExamples derives the override variable name for each starter leaf.
func (m initModel) envExamples() []string {
	prefix := m.envPrefix()
	return []string{
		envconf.DeriveEnvName(prefix, "environment"),
		envconf.DeriveEnvName(prefix, "log-level"),
		envconf.DeriveEnvName(prefix, "server", "host"),
		envconf.DeriveEnvName(prefix, "server", "port"),
	}
}

func (m initModel) writeFile() (string, error) {
	path := filepath.Join(".", m.configName()+".json")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}

	data, err := json.MarshalIndent(starterConfig(), "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", err
	}
	return path, nil
}
