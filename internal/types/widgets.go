package types

// WidgetConfig describes one orderable, independently hideable section of
// the report presentation. Order values across the known widget set always
// form a contiguous 1..N sequence with no duplicates.
type WidgetConfig struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	IsVisible   bool   `json:"isVisible"`
	Order       int    `json:"order"`
	Icon        string `json:"icon,omitempty"`
}
