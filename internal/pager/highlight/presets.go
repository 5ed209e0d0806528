package highlight

func defaultForegrounds() map[TokenKind]Color {
	return map[TokenKind]Color{
		Plain:    "#f8f8f2",
		Keyword:  "#f92672",
		String:   "#e6db74",
		Comment:  "#75715e",
		Number:   "#ae81ff",
		Type:     "#66d9ef",
		Operator: "#f8f8f2",
	}
}

// builtinPresets returns the four compiled-in themes named in the
// specification: Monokai, Dracula, Nord, and Catppuccin Mocha.
func builtinPresets() []Theme {
	return []Theme{
		{
			Name: "monokai",
			Foreground: map[TokenKind]Color{
				Plain: "#f8f8f2", Keyword: "#f92672", String: "#e6db74",
				Comment: "#75715e", Number: "#ae81ff", Type: "#66d9ef", Operator: "#f8f8f2",
			},
			StatusBarFg: "#f8f8f2", StatusBarBg: "#272822",
			SearchMatchFg: "#272822", SearchMatchBg: "#e6db74",
			PreviewMatchBg: "#49483e", LineNumberFg: "#75715e",
		},
		{
			Name: "dracula",
			Foreground: map[TokenKind]Color{
				Plain: "#f8f8f2", Keyword: "#ff79c6", String: "#f1fa8c",
				Comment: "#6272a4", Number: "#bd93f9", Type: "#8be9fd", Operator: "#ff79c6",
			},
			StatusBarFg: "#f8f8f2", StatusBarBg: "#282a36",
			SearchMatchFg: "#282a36", SearchMatchBg: "#f1fa8c",
			PreviewMatchBg: "#44475a", LineNumberFg: "#6272a4",
		},
		{
			Name: "nord",
			Foreground: map[TokenKind]Color{
				Plain: "#d8dee9", Keyword: "#81a1c1", String: "#a3be8c",
				Comment: "#616e88", Number: "#b48ead", Type: "#8fbcbb", Operator: "#81a1c1",
			},
			StatusBarFg: "#eceff4", StatusBarBg: "#2e3440",
			SearchMatchFg: "#2e3440", SearchMatchBg: "#ebcb8b",
			PreviewMatchBg: "#434c5e", LineNumberFg: "#4c566a",
		},
		{
			Name: "catppuccin-mocha",
			Foreground: map[TokenKind]Color{
				Plain: "#cdd6f4", Keyword: "#cba6f7", String: "#a6e3a1",
				Comment: "#6c7086", Number: "#fab387", Type: "#89b4fa", Operator: "#cba6f7",
			},
			StatusBarFg: "#cdd6f4", StatusBarBg: "#1e1e2e",
			SearchMatchFg: "#1e1e2e", SearchMatchBg: "#f9e2af",
			PreviewMatchBg: "#313244", LineNumberFg: "#6c7086",
		},
	}
}
