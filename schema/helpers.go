package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatContext renders a raw token count as a short label such as "128k" or "1.0M".
func FormatContext(tokens int) string {
	if tokens >= 1_000_000 {
		return fmt.Sprintf("%.1fM", float64(tokens)/1_000_000)
	}
	return fmt.Sprintf("%dk", tokens/1000)
}

// FormatParams renders a parameter count in billions, e.g. "117B" or "7.5B".
func FormatParams(billions float64) string {
	return strconv.FormatFloat(billions, 'f', -1, 64) + "B"
}

// FormatParamsPair renders total and active parameters, omitting active when they match.
func FormatParamsPair(total, active float64) string {
	if total == active {
		return FormatParams(total)
	}
	return fmt.Sprintf("%s (%s active)", FormatParams(total), FormatParams(active))
}

// FormatMemory renders the known memory footprints in precision order, e.g. "fp16:65 fp8:63".
func FormatMemory(m ModelRecord) string {
	var parts []string
	for _, p := range AllPrecisions {
		if gb, ok := m.Memory(p); ok {
			parts = append(parts, fmt.Sprintf("%s:%s", p, strconv.FormatFloat(gb, 'f', -1, 64)))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// FormatFlags renders the boolean traits of a model as a compact tag list.
func FormatFlags(m ModelRecord) string {
	var tags []string
	if m.Reasoning {
		tags = append(tags, "reasoning")
	}
	if m.Visual {
		tags = append(tags, "visual")
	}
	if m.ContextWindow >= LongContextThreshold {
		tags = append(tags, "long-context")
	}
	return strings.Join(tags, ",")
}
