package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mklettner/ledsmith/pkg/geom"
	"github.com/mklettner/ledsmith/pkg/observability"
	"github.com/mklettner/ledsmith/pkg/outline/anchor"
	"github.com/mklettner/ledsmith/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// nudgeCommand creates the nudge command.
func (c *CLI) nudgeCommand() *cobra.Command {
	var (
		file  string
		frame string
		out   string
		step  float64
	)

	cmd := &cobra.Command{
		Use:   "nudge [path]",
		Short: "Interactively move anchor points with validation",
		Long: `Nudge opens an interactive editor over the outline's anchor and control
points. Arrow keys move the selected point by the step size; every move is
validated and reverted if it would break the outline. Moves that grow the
bounding box commit with a warning.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readPathArg(args, file)
			if err != nil {
				return err
			}
			bounds, err := parseFrame(frame)
			if err != nil {
				return err
			}

			pts := anchor.BuildPoints(d)
			if len(pts) == 0 {
				printError("outline has no editable points")
				return nil
			}

			model := newNudgeModel(d, pts, bounds, step)
			prog := tea.NewProgram(model)
			final, err := prog.Run()
			if err != nil {
				return err
			}

			m, ok := final.(nudgeModel)
			if !ok {
				return nil
			}

			if !m.dirty {
				printInfo("no changes made")
				return nil
			}
			if out != "" {
				if err := os.WriteFile(out, []byte(m.path+"\n"), 0o644); err != nil {
					return err
				}
				printSuccess("saved edited outline")
				printFile(out)
				return nil
			}
			printSuccess("edited outline:")
			fmt.Println(m.path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the outline path from a file")
	cmd.Flags().StringVar(&frame, "frame", "", "design frame as x,y,width,height for the escape check")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the edited path to a file instead of stdout")
	cmd.Flags().Float64Var(&step, "step", 1.0, "distance moved per keypress")

	return cmd
}

// =============================================================================
// nudgeModel - Interactive anchor editing
// =============================================================================

// nudgeModel is the bubbletea model for the anchor editor. It holds the
// last accepted path; rejected moves never touch it.
type nudgeModel struct {
	path      string
	points    []anchor.Point
	bounds    *geom.Rect
	validator anchor.Validator

	cursor int
	step   float64
	dirty  bool

	status         string
	statusSeverity anchor.Severity

	height int
	offset int
}

func newNudgeModel(d string, pts []anchor.Point, bounds *geom.Rect, step float64) nudgeModel {
	if step <= 0 {
		step = 1.0
	}
	return nudgeModel{
		path:      d,
		points:    pts,
		bounds:    bounds,
		validator: pipeline.MoveValidator(),
		step:      step,
		height:    12,
	}
}

func (m nudgeModel) Init() tea.Cmd {
	return nil
}

func (m nudgeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "k", "tab":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "j":
			if m.cursor < len(m.points)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "+", "=":
			m.step *= 2
		case "-":
			if m.step > 0.125 {
				m.step /= 2
			}
		case "left":
			m = m.move(-m.step, 0)
		case "right":
			m = m.move(m.step, 0)
		case "up":
			m = m.move(0, m.step)
		case "down":
			m = m.move(0, -m.step)
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 10
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

// move nudges the selected point by (dx, dy) through the safe-edit
// protocol and folds the verdict into the model.
func (m nudgeModel) move(dx, dy float64) nudgeModel {
	pt := m.points[m.cursor]
	target := geom.Point{X: pt.X + dx, Y: pt.Y + dy}

	ctx := context.Background()
	observability.Editor().OnMoveAttempt(ctx, pt.ID)

	res, err := anchor.MoveAnchorSafe(m.path, pt.ID, target, m.bounds, m.validator)
	if err != nil {
		m.status = err.Error()
		m.statusSeverity = anchor.SeverityError
		return m
	}

	if !res.Accepted {
		observability.Editor().OnMoveRejected(ctx, pt.ID, res.Reason)
		m.status = "reverted: " + res.Reason
		m.statusSeverity = anchor.SeverityError
		return m
	}

	observability.Editor().OnMoveCommitted(ctx, pt.ID, string(res.Severity))
	m.path = res.Path
	m.points = res.Points
	m.dirty = true
	if m.cursor >= len(m.points) {
		m.cursor = len(m.points) - 1
	}

	if res.Severity == anchor.SeverityWarn {
		m.status = "warning: " + res.Reason
		m.statusSeverity = anchor.SeverityWarn
	} else {
		m.status = fmt.Sprintf("moved %s to (%.2f, %.2f)", pt.ID, target.X, target.Y)
		m.statusSeverity = anchor.SeverityOK
	}
	return m
}

func (m nudgeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Nudge Anchors"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("j/k select  arrows move  +/- step  ⏎ done  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.points) {
		end = len(m.points)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		p := m.points[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			p.ID,
			string(p.Kind),
			fmt.Sprintf("%.2f", p.X),
			fmt.Sprintf("%.2f", p.Y),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Point", "Kind", "X", "Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  step %.3g", m.cursor+1, len(m.points), m.step)))
	b.WriteString("\n\n")

	if m.status != "" {
		switch m.statusSeverity {
		case anchor.SeverityError:
			b.WriteString(styleIconError.Render(iconError) + " " + StyleWarning.Render(m.status))
		case anchor.SeverityWarn:
			b.WriteString(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(m.status))
		default:
			b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + StyleDim.Render(m.status))
		}
		b.WriteString("\n")
	}

	return b.String()
}
