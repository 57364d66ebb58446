// 包 report：汇总生成结果并输出人类可读的统计
package report

import (
	"fmt"
	"io"
	"strings"

	"fra-patta/internal/patta"
)

// StateCount：按邦计数
type StateCount struct {
	State string
	Count int
}

// Summary：总数、按状态计数、按邦计数（保持配置顺序）、质心兜底次数
type Summary struct {
	Total     int
	ByStatus  map[patta.Status]int
	ByState   []StateCount
	Fallbacks int
}

// Summarize：只读统计；stateOrder 中没有记录的邦计为 0
func Summarize(records []patta.Record, stateOrder []string) Summary {
	s := Summary{Total: len(records), ByStatus: make(map[patta.Status]int, len(patta.Statuses))}
	for _, st := range patta.Statuses {
		s.ByStatus[st] = 0
	}
	byState := make(map[string]int, len(stateOrder))
	for _, r := range records {
		s.ByStatus[r.Status]++
		byState[r.State]++
		if r.Fallback {
			s.Fallbacks++
		}
	}
	for _, name := range stateOrder {
		s.ByState = append(s.ByState, StateCount{State: name, Count: byState[name]})
	}
	return s
}

var rule = strings.Repeat("=", 60)

// Print：输出最终汇总
func (s Summary) Print(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "TOTAL PATTAS GENERATED: %d\n", s.Total)
	fmt.Fprintln(&b, rule)
	for _, st := range patta.Statuses {
		fmt.Fprintf(&b, "  %s: %d\n", st, s.ByStatus[st])
	}
	if s.Fallbacks > 0 {
		fmt.Fprintf(&b, "  centroid fallbacks: %d\n", s.Fallbacks)
	}
	fmt.Fprintln(&b, "\nBreakdown by state:")
	for _, sc := range s.ByState {
		fmt.Fprintf(&b, "  %s: %d\n", sc.State, sc.Count)
	}
	fmt.Fprintln(&b, rule)
	_, err := io.WriteString(w, b.String())
	return err
}
