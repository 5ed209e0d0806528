package highlight

import "strings"

// Syntax names one registered language grammar.
type Syntax struct {
	Name         string
	LineComment  string
	BlockOpen    string
	BlockClose   string
	Keywords     map[string]bool
	Types        map[string]bool
	QuoteChars   string
}

var plainSyntax = Syntax{Name: "plain"}

var syntaxesByExt = map[string]Syntax{
	".go":   goSyntax,
	".rs":   rustSyntax,
	".c":    cSyntax,
	".h":    cSyntax,
	".cpp":  cSyntax,
	".hpp":  cSyntax,
	".py":   pythonSyntax,
	".rb":   rubySyntax,
	".sh":   shellSyntax,
	".bash": shellSyntax,
	".js":   cLikeSyntax,
	".ts":   cLikeSyntax,
	".java": cLikeSyntax,
	".yaml": shellSyntax,
	".yml":  shellSyntax,
	".toml": shellSyntax,
}

// DetectSyntax resolves a Syntax by the file extension of logicalPath
// (after any compression suffix has already been stripped by the caller).
// An unrecognized extension returns the plain-text syntax, never an error.
func DetectSyntax(logicalPath string) Syntax {
	ext := extOf(logicalPath)
	if s, ok := syntaxesByExt[ext]; ok {
		return s
	}
	return plainSyntax
}

func extOf(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(path[i:])
}

func keywordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

var goSyntax = Syntax{
	Name:        "go",
	LineComment: "//",
	BlockOpen:   "/*",
	BlockClose:  "*/",
	QuoteChars:  "\"'`",
	Keywords: keywordSet("break", "case", "chan", "const", "continue", "default",
		"defer", "else", "fallthrough", "for", "func", "go", "goto", "if",
		"import", "interface", "map", "package", "range", "return", "select",
		"struct", "switch", "type", "var"),
	Types: keywordSet("bool", "byte", "complex64", "complex128", "error",
		"float32", "float64", "int", "int8", "int16", "int32", "int64",
		"rune", "string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr"),
}

var rustSyntax = Syntax{
	Name:        "rust",
	LineComment: "//",
	BlockOpen:   "/*",
	BlockClose:  "*/",
	QuoteChars:  "\"'",
	Keywords: keywordSet("as", "break", "const", "continue", "crate", "dyn",
		"else", "enum", "extern", "fn", "for", "if", "impl", "in", "let",
		"loop", "match", "mod", "move", "mut", "pub", "ref", "return",
		"self", "Self", "static", "struct", "super", "trait", "type",
		"unsafe", "use", "where", "while"),
	Types: keywordSet("bool", "char", "f32", "f64", "i8", "i16", "i32", "i64",
		"i128", "isize", "str", "String", "u8", "u16", "u32", "u64", "u128", "usize"),
}

var cSyntax = Syntax{
	Name:        "c",
	LineComment: "//",
	BlockOpen:   "/*",
	BlockClose:  "*/",
	QuoteChars:  "\"'",
	Keywords: keywordSet("break", "case", "const", "continue", "default", "do",
		"else", "enum", "extern", "for", "goto", "if", "return", "sizeof",
		"static", "struct", "switch", "typedef", "union", "volatile", "while"),
	Types: keywordSet("char", "double", "float", "int", "long", "short",
		"signed", "unsigned", "void"),
}

var cLikeSyntax = Syntax{
	Name:        "c-like",
	LineComment: "//",
	BlockOpen:   "/*",
	BlockClose:  "*/",
	QuoteChars:  "\"'`",
	Keywords: keywordSet("break", "case", "catch", "class", "const", "continue",
		"default", "do", "else", "export", "extends", "finally", "for",
		"function", "if", "import", "in", "instanceof", "interface", "new",
		"return", "static", "super", "switch", "this", "throw", "try",
		"typeof", "var", "let", "void", "while", "yield"),
	Types: keywordSet("boolean", "number", "string", "any", "void", "object"),
}

var pythonSyntax = Syntax{
	Name:        "python",
	LineComment: "#",
	QuoteChars:  "\"'",
	Keywords: keywordSet("and", "as", "assert", "async", "await", "break",
		"class", "continue", "def", "del", "elif", "else", "except",
		"finally", "for", "from", "global", "if", "import", "in", "is",
		"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
		"while", "with", "yield"),
}

var rubySyntax = Syntax{
	Name:        "ruby",
	LineComment: "#",
	QuoteChars:  "\"'",
	Keywords: keywordSet("begin", "break", "case", "class", "def", "do",
		"else", "elsif", "end", "ensure", "for", "if", "in", "module",
		"next", "nil", "redo", "rescue", "retry", "return", "self", "super",
		"then", "unless", "until", "when", "while", "yield"),
}

var shellSyntax = Syntax{
	Name:        "shell",
	LineComment: "#",
	QuoteChars:  "\"'",
	Keywords: keywordSet("if", "then", "else", "elif", "fi", "for", "while",
		"do", "done", "case", "esac", "function", "in", "return"),
}
