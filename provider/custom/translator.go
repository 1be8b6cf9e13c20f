package custom

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

// stringsFrom converts a script result into references.
// A table contributes its non-empty string values in index order, a string its
// comma-separated parts, and nil nothing.
func stringsFrom(value lua.LValue) ([]string, error) {
	switch value.Type() {
	case lua.LTNil:
		return nil, nil
	case lua.LTString:
		parts := lo.Map(strings.Split(value.String(), ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		})
		return lo.Compact(parts), nil
	case lua.LTTable:
		table := value.(*lua.LTable)
		var list []string
		for i := 1; i <= table.Len(); i++ {
			v := table.RawGetInt(i)
			if v.Type() == lua.LTString && v.String() != "" {
				list = append(list, v.String())
			}
		}
		return list, nil
	default:
		return nil, fmt.Errorf("expected a table of strings, got %s", value.Type())
	}
}
