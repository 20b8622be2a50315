// Package render draws schedules for a terminal: a results table and a Gantt
// strip of CPU intervals.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/schedulers"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/util"
)

const (
	unitWidth     = 2
	minBlockWidth = 6
)

var (
	palette = []lipgloss.Color{
		lipgloss.Color("#7C3AED"), // Purple
		lipgloss.Color("#06B6D4"), // Cyan
		lipgloss.Color("#F59E0B"), // Amber
		lipgloss.Color("#10B981"), // Green
		lipgloss.Color("#EF4444"), // Red
		lipgloss.Color("#3B82F6"), // Blue
	}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5E7EB"))
	idleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Align(lipgloss.Center)
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(title))
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

// Gantt renders the timeline as one block per interval, with idle gaps shown
// as their own blocks and a time axis underneath.
func Gantt(timeline []core.TimelineInterval) string {
	if len(timeline) == 0 {
		return ""
	}

	var blocks, axis strings.Builder
	cursor := timeline[0].Start
	mark := func(at, width int) {
		label := fmt.Sprint(at)
		axis.WriteString(label)
		if pad := width - len(label); pad > 0 {
			axis.WriteString(strings.Repeat(" ", pad))
		}
	}

	for _, iv := range timeline {
		if iv.Start > cursor {
			width := blockWidth(iv.Start - cursor)
			blocks.WriteString(idleStyle.Width(width).Render("idle"))
			mark(cursor, width)
		}
		width := blockWidth(iv.Duration())
		blocks.WriteString(processStyle(iv.ProcessID).Width(width).Render(fmt.Sprintf("P%d", iv.ProcessID)))
		mark(iv.Start, width)
		cursor = iv.End
	}
	axis.WriteString(fmt.Sprint(cursor))

	return blocks.String() + "\n" + axisStyle.Render(axis.String())
}

func blockWidth(duration int) int {
	return max(duration*unitWidth, minBlockWidth)
}

func processStyle(pid int) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(palette[(pid-1+len(palette))%len(palette)])
}

// Table writes the per-process results with averages in the footer.
func Table(w io.Writer, schedule schedulers.Schedule) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Completion", "Turnaround", "Waiting", "Response"})
	for _, r := range schedule.Results {
		table.Append([]string{
			fmt.Sprint(r.ID),
			fmt.Sprint(r.ArrivalTime),
			fmt.Sprint(r.BurstTime),
			fmt.Sprint(r.StartTime),
			fmt.Sprint(r.CompletionTime),
			fmt.Sprint(r.TurnaroundTime),
			fmt.Sprint(r.WaitingTime),
			fmt.Sprint(r.ResponseTime),
		})
	}

	waiting, response, turnaround := util.CalculateAverage(schedule.Results)
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", turnaround),
		fmt.Sprintf("%.2f", waiting),
		fmt.Sprintf("%.2f", response),
	})
	table.Render()
}

// Summary writes utilization, throughput and the waiting/turnaround spread.
func Summary(w io.Writer, schedule schedulers.Schedule) {
	p := util.CalculatePercentiles(schedule.Results)
	_, _ = fmt.Fprintf(w, "CPU utilization: %s%%  Throughput: %s/t  Makespan: %d  Idle: %d\n",
		schedule.CpuUtilization, schedule.Throughput, schedule.TotalTime, schedule.IdleTime)
	_, _ = fmt.Fprintf(w, "Waiting p50/p90: %.2f/%.2f  Turnaround p50/p90: %.2f/%.2f\n",
		p.WaitingP50, p.WaitingP90, p.TurnaroundP50, p.TurnaroundP90)
}

// Schedule writes the title, Gantt strip, results table and summary.
func Schedule(w io.Writer, schedule schedulers.Schedule) {
	Title(w, schedule.Algorithm.Name())
	_, _ = fmt.Fprintln(w, Gantt(schedule.Timeline))
	_, _ = fmt.Fprintln(w)
	Table(w, schedule)
	Summary(w, schedule)
	_, _ = fmt.Fprintln(w)
}

// Comparison writes one row per schedule so algorithms can be compared on
// the same input.
func Comparison(w io.Writer, schedules []schedulers.Schedule) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Waiting", "Avg Turnaround", "Avg Response", "CPU %", "Throughput"})
	for _, s := range schedules {
		waiting, response, turnaround := util.CalculateAverage(s.Results)
		table.Append([]string{
			s.Algorithm.Name(),
			fmt.Sprintf("%.2f", waiting),
			fmt.Sprintf("%.2f", turnaround),
			fmt.Sprintf("%.2f", response),
			s.CpuUtilization,
			s.Throughput,
		})
	}
	table.Render()
}
