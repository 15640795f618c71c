package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Seed     uint64
	Games    int
	MaxTicks uint64
	Release  tetris.ReleaseMode
	Noise    float64

	// Results
	Results    []GameResult
	TotalScore int
	TotalLines int
	BestScore  int
	TotalTicks uint64
	Elapsed    time.Duration

	Pieces  [tetris.PieceTypeCount]int
	Clears  [5]int
	Systems []tetris.SystemStats
}

// Add folds one finished game into the report.
func (r *Report) Add(result GameResult, session *tetris.Session) {
	r.Results = append(r.Results, result)
	r.TotalScore += result.Score
	r.TotalLines += result.Lines
	r.TotalTicks += result.Ticks
	r.BestScore = max(r.BestScore, result.Score)

	stats := session.Stats()
	for t := range tetris.PieceType(tetris.PieceTypeCount) {
		r.Pieces[t] += stats.Pieces(t)
	}
	for rows := 1; rows < len(r.Clears); rows++ {
		r.Clears[rows] += stats.Clears(rows)
	}

	r.mergeSystems(session.SchedulerStats())
}

func (r *Report) mergeSystems(stats *tetris.SchedulerStats) {
	if r.Systems == nil {
		r.Systems = append([]tetris.SystemStats(nil), stats.Systems...)
		return
	}

	for i, s := range stats.Systems {
		merged := &r.Systems[i]
		if s.ExecutionCount == 0 {
			continue
		}
		if merged.ExecutionCount == 0 || s.MinDuration < merged.MinDuration {
			merged.MinDuration = s.MinDuration
		}
		merged.MaxDuration = max(merged.MaxDuration, s.MaxDuration)
		merged.ExecutionCount += s.ExecutionCount
		merged.TotalDuration += s.TotalDuration
		merged.LastDuration = s.LastDuration
		merged.AvgDuration = merged.TotalDuration / time.Duration(merged.ExecutionCount)
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Seed:** {{.Seed}}
- **Games:** {{.Games}}
- **Tick Limit:** {{.MaxTicks}}
- **Release Mode:** {{.Release}}
- **Bot Noise:** {{printf "%.2f" .Noise}}

## Games
| Seed | Score | Lines | Pieces | Ticks | Ended |
|------|-------|-------|--------|-------|-------|
{{- range .Results}}
| {{.Seed}} | {{.Score}} | {{.Lines}} | {{.Pieces}} | {{.Ticks}} | {{if .GameOver}}game over{{else}}tick limit{{end}} |
{{- end}}

## Totals
- **Best Score:** {{.BestScore}}
- **Average Score:** {{avg .TotalScore (len .Results)}}
- **Total Lines:** {{.TotalLines}}
- **Total Ticks:** {{.TotalTicks}}
- **Wall Time:** {{.Elapsed}}

## Pieces
{{- range $t, $n := .Pieces}}
- {{piece $t}}: {{$n}}
{{- end}}

## Line Clears
{{- range $rows, $n := .Clears}}{{if $rows}}
- {{$rows}} row: {{$n}}{{end}}
{{- end}}

## Systems
| System | Executions | Avg | Min | Max |
|--------|------------|-----|-----|-----|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}
`

	fm := template.FuncMap{
		"avg": func(total, n int) string {
			if n == 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.1f", float64(total)/float64(n))
		},
		"piece": func(i int) string {
			return tetris.PieceType(i).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
