package export

// Names of the special frames resolved by title.
const (
	// CoverFrameName is the frame placed first in every export.
	CoverFrameName = "Cover"
	// TOCFrameName is the frame placed right after the cover.
	TOCFrameName = "Table of Contents"
)

// Config holds configuration for catalog exports.
type Config struct {
	// Concurrency bounds the number of parallel page downloads.
	Concurrency int `mapstructure:"concurrency" default:"4"`
	// BackFrame is the default back-cover frame name.
	BackFrame string `mapstructure:"back_frame" default:"Back Cover"`
	// Prefix is the object prefix uploads are written under.
	Prefix string `mapstructure:"prefix" default:"exports"`
	// Upload stores exports in the bucket instead of returning the bytes.
	Upload bool `mapstructure:"upload" default:"false"`
	// PresignMinutes is the validity of the download link returned for uploads.
	PresignMinutes int `mapstructure:"presign_minutes" default:"60"`
	// MaxPageBytes bounds the size of a single downloaded page.
	MaxPageBytes int64 `mapstructure:"max_page_bytes" default:"67108864"`
}
