package config

const (
	defaultLogDir         = "~/.local/share/sweeper/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultSweepInterval  = 30
	defaultRepairInterval = 360
	defaultNtfyTimeout    = 10
)

const shellIcons = `%SystemRoot%\system32\SHELL32.dll`

// Default returns a Config populated with repository defaults. Slice-valued
// sections stay empty here; normalize fills them so user-provided values
// replace rather than extend the defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Workflow: Workflow{
			SweepInterval:  defaultSweepInterval,
			RepairInterval: defaultRepairInterval,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNtfyTimeout,
			Sweeps:         true,
			Repairs:        true,
			Errors:         true,
		},
	}
}

func defaultSourceFolders() []string {
	return []string{"~/Desktop", "~/Downloads"}
}

// defaultCategories mirrors the historical archive layout: folder names,
// icon indices, and background colors must match trees produced by earlier
// implementations so repair passes heal them in place.
func defaultCategories() []Category {
	return []Category{
		{
			Name:       "Audio",
			Extensions: []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a"},
			Icon:       shellIcons,
			IconIndex:  137,
			Color:      []uint8{144, 238, 144},
		},
		{
			Name: "Documents",
			Extensions: []string{
				".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt",
				".xls", ".xlsx", ".ppt", ".pptx", ".csv", ".md",
			},
			Icon:      shellIcons,
			IconIndex: 21,
			Color:     []uint8{255, 232, 186},
		},
		{
			Name:       "Images",
			Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".svg", ".webp", ".ico", ".heic"},
			Icon:       shellIcons,
			IconIndex:  140,
			Color:      []uint8{173, 216, 230},
		},
		{
			Name:       "Video",
			Extensions: []string{".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".webm", ".m4v", ".mpg", ".mpeg"},
			Icon:       shellIcons,
			IconIndex:  136,
			Color:      []uint8{255, 182, 193},
		},
		{
			Name:       "Shortcuts",
			Extensions: []string{".lnk", ".url", ".desktop"},
			Icon:       shellIcons,
			IconIndex:  29,
			Color:      []uint8{255, 215, 0},
		},
		{
			Name: "Code",
			Extensions: []string{
				".py", ".go", ".js", ".ts", ".html", ".css", ".java", ".c", ".cpp", ".h",
				".rs", ".sh", ".ps1", ".json", ".xml", ".yaml", ".yml", ".sql",
			},
			Icon:      shellIcons,
			IconIndex: 70,
			Color:     []uint8{221, 160, 221},
		},
		{
			Name:       "Executables",
			Extensions: []string{".exe", ".msi", ".bat", ".cmd", ".app", ".appimage", ".deb", ".rpm"},
			Icon:       shellIcons,
			IconIndex:  8,
			Color:      []uint8{255, 160, 122},
		},
		{
			Name:       "ZIP_Files",
			Extensions: []string{".zip"},
			Icon:       `%SystemRoot%\system32\zipfldr.dll`,
			IconIndex:  0,
			Color:      []uint8{210, 180, 140},
		},
		{
			Name:       "RAR_Files",
			Extensions: []string{".rar"},
			Icon:       shellIcons,
			IconIndex:  165,
			Color:      []uint8{210, 180, 140},
		},
		{
			Name:       "Other_Archives",
			Extensions: []string{".7z", ".tar", ".gz", ".bz2", ".xz", ".tgz", ".iso"},
			Icon:       shellIcons,
			IconIndex:  165,
			Color:      []uint8{210, 180, 140},
		},
		{
			Name:      "Others",
			Icon:      shellIcons,
			IconIndex: 234,
			Color:     []uint8{211, 211, 211},
		},
	}
}
