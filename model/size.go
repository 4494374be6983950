package model

import "fmt"

const (
	OneKb = 1024
	OneMb = 1024 * OneKb
	OneGb = 1024 * OneMb
)

func FormatSize(size int64) string {
	switch {
	case size < OneKb:
		return fmt.Sprintf("%d bytes", size)
	case size < OneMb:
		return fmt.Sprintf("%.2f KB", float64(size)/OneKb)
	case size < OneGb:
		return fmt.Sprintf("%.2f MB", float64(size)/OneMb)
	default:
		return fmt.Sprintf("%.2f GB", float64(size)/OneGb)
	}
}
