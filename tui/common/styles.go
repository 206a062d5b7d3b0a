package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BF00FF")).
			Padding(1, 2, 0, 1)

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Italic(true).
			MarginLeft(1)

	// CreatorStyle styles video creator names.
	CreatorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// CaptionStyle styles video captions.
	CaptionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// CountStyle styles like/comment/share counters.
	CountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// LikedStyle highlights the heart once the session user has liked.
	LikedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// ActiveCellStyle frames the video currently eligible for playback.
	ActiveCellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BF00FF")).
			Padding(0, 1)

	// InactiveCellStyle frames videos outside the active slot.
	InactiveCellStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#45475A")).
				Padding(0, 1)

	// SheetTitleStyle styles the comment sheet heading.
	SheetTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6DA95"))

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// NoticeStyle styles transient user notices.
	NoticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95"))

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// TabActiveStyle styles the selected profile tab.
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BF00FF")).
			Bold(true).
			Padding(0, 1)

	// TabInactiveStyle styles unselected profile tabs.
	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E738D")).
				Padding(0, 1)

	// DialogStyle frames modal overlays such as the recommendation dialog.
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#BF00FF")).
			Padding(1, 2)

	// FieldLabelStyle styles form field labels.
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7DC4E4")).
			Bold(true)
)
