package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/gopress/sched"
	"github.com/msto63/gopress/stream"
	"github.com/msto63/gopress/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactive preview of the terminal widgets",
	Long: `Interactive preview of the terminal widgets.

Keys:
  space  toggle the switch
  s      start or stop the activity indicator
  a      show an alert, enter dismisses it
  q      quit`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

var (
	previewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.SystemBlue.Terminal()).MarginBottom(1)
	previewHelpStyle  = lipgloss.NewStyle().Foreground(ui.SystemGray.Terminal()).MarginTop(1)
)

type heartbeatMsg int

type previewModel struct {
	indicator *ui.ActivityIndicator
	toggle    *ui.Switch
	stack     *ui.StackView
	vc        *ui.ViewController
	beats     int
}

func newPreviewModel() previewModel {
	save := ui.Configure(ui.NewButton("Save", ui.SystemBlue, nil), func(b *ui.Button) {
		b.CornerRadius = 4
	})
	cancel := ui.NewButton("Cancel", ui.SystemGray, nil)
	toggle := ui.NewSwitch(true, ui.SystemBlue, ui.SystemGreen)

	stack := ui.NewStackView(ui.AxisHorizontal)
	stack.Spacing = 2
	stack.AddArrangedSubviews(save, cancel, toggle)

	vc := ui.NewViewController()
	vc.Root.AddSubview(stack)
	ui.HorizontalEdgesEqualToSuperview(stack, 1)

	return previewModel{
		indicator: ui.NewActivityIndicator(ui.IndicatorMedium, ui.SystemBlue, true),
		toggle:    toggle,
		stack:     stack,
		vc:        vc,
	}
}

func (m previewModel) Init() tea.Cmd {
	return m.indicator.Start()
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.toggle.Toggle()
		case "s":
			if m.indicator.IsAnimating() {
				m.indicator.Stop()
				return m, nil
			}
			return m, m.indicator.Start()
		case "a":
			m.vc.ShowAlert("gopress", msgPreviewAlert.Localized())
		case "enter":
			if alert := m.vc.Presented(); alert != nil {
				alert.Select(0)
			}
		}
		return m, nil

	case heartbeatMsg:
		m.beats = int(msg)
		return m, nil
	}
	return m, m.indicator.Update(msg)
}

func (m previewModel) View() string {
	var b strings.Builder
	b.WriteString(previewTitleStyle.Render(msgPreviewTitle.Localized()))
	b.WriteString("\n")
	b.WriteString(m.stack.Render())
	b.WriteString("\n\n")

	status := msgPreviewIdle.Localized()
	if m.indicator.IsAnimating() {
		status = msgPreviewWorking.LocalizedWith(m.indicator.Render())
	}
	fmt.Fprintf(&b, "%s  %s\n", status, msgPreviewHeartbeat.LocalizedWith(strconv.Itoa(m.beats)))

	if alert := m.vc.Presented(); alert != nil {
		b.WriteString("\n")
		b.WriteString(alert.Render())
		b.WriteString("\n")
	}
	b.WriteString(previewHelpStyle.Render(msgPreviewHelp.Localized()))
	return b.String()
}

func runPreview(cmd *cobra.Command, _ []string) error {
	p := tea.NewProgram(newPreviewModel(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	beats := stream.NewSubject[int]()
	sub := stream.Sink(
		stream.Map[int, tea.Msg](beats, func(n int) tea.Msg { return heartbeatMsg(n) }),
		p.Send,
		nil,
	)
	defer sub.Cancel()

	count := 0
	item := sched.ScheduleRepeatedly(sched.Main(), time.Second, func() {
		count++
		beats.Send(count)
	})
	defer item.Cancel()

	_, err := p.Run()
	return err
}
