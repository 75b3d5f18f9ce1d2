package syntax

const backtick = "`"

// Operator runs shared by the C-family and ECMAScript profiles.
const cOperators = `[-+*/%=<>!&|^~?:]+`

const (
	lineComment  = `//[^\n]*`
	blockComment = `/\*(?s:.*?)\*/`

	// Single- and double-quoted literals stop at an unescaped newline.
	dqString = `"(?:[^"\\\n]|\\.)*"`
	sqString = `'(?:[^'\\\n]|\\.)*'`
)

//nolint:gochecknoglobals // Built-in rule tables are fixed at compile time.
var profiles = []Profile{
	{
		Language:   LanguagePython,
		Title:      "Python",
		Aliases:    []string{"py", "python3"},
		Extensions: []string{".py", ".pyw", ".pyi"},
		Rules: []Rule{
			{
				Name: "keyword",
				Pattern: `\b(?:and|as|assert|async|await|break|case|class|continue|def|del|elif|else|except|` +
					`False|finally|for|from|global|if|import|in|is|lambda|match|None|nonlocal|not|or|pass|` +
					`raise|return|True|try|while|with|yield)\b`,
				Kind: KindKeyword,
			},
			{
				Name: "builtin",
				Pattern: `\b(?:abs|all|any|bool|dict|dir|enumerate|filter|float|format|getattr|hasattr|int|` +
					`isinstance|iter|len|list|map|max|min|next|open|print|range|repr|reversed|round|set|` +
					`setattr|sorted|str|sum|super|tuple|type|zip)\b`,
				Kind: KindBuiltin,
			},
			{Name: "operator", Pattern: `[-+*/%=<>!&|^~@]+`, Kind: KindOperator},
			{
				Name: "string",
				Pattern: `(?:\b(?i:[rbfu]{1,2}))?` +
					`(?:"""(?s:(?:[^\\]|\\.)*?)"""|'''(?s:(?:[^\\]|\\.)*?)'''|` + dqString + `|` + sqString + `)`,
				Kind: KindString,
				Mask: true,
			},
			{Name: "comment", Pattern: `#[^\n]*`, Kind: KindComment, Mask: true},
			{
				Name:    "number",
				Pattern: `\b(?:0[xX][0-9a-fA-F_]+|0[oO][0-7_]+|0[bB][01_]+|\d[\d_]*\.?\d*(?:[eE][+-]?\d+)?[jJ]?)\b`,
				Kind:    KindNumber,
			},
			{Name: "function", Pattern: `\bdef[ \t]+([A-Za-z_]\w*)`, Kind: KindFunction, Group: 1},
			{Name: "class", Pattern: `\bclass[ \t]+([A-Za-z_]\w*)`, Kind: KindClass, Group: 1},
		},
	},
	{
		Language:   LanguageCLike,
		Title:      "C-family (C, C++, Java, C#)",
		Aliases:    []string{"c", "cpp", "c++", "java", "csharp", "cs"},
		Extensions: []string{".c", ".h", ".cpp", ".cc", ".cxx", ".hpp", ".hh", ".java", ".cs"},
		Rules: []Rule{
			{
				Name:    "preprocessor",
				Pattern: `(?m)^[ \t]*#[ \t]*(?:define|elif|else|endif|error|if|ifdef|ifndef|include|line|pragma|region|endregion|undef)\b`,
				Kind:    KindKeyword,
			},
			{
				Name: "keyword",
				Pattern: `\b(?:abstract|auto|bool|boolean|break|byte|case|catch|char|class|const|continue|` +
					`default|delete|do|double|else|enum|extends|extern|false|final|finally|float|for|goto|` +
					`if|implements|import|inline|int|interface|long|namespace|new|null|nullptr|override|` +
					`package|private|protected|public|readonly|register|return|sealed|short|signed|sizeof|` +
					`static|string|struct|super|switch|template|this|throw|throws|true|try|typedef|` +
					`typename|union|unsigned|using|var|virtual|void|volatile|while)\b`,
				Kind: KindKeyword,
			},
			{Name: "operator", Pattern: cOperators, Kind: KindOperator},
			{Name: "header", Pattern: `(?m)^[ \t]*#[ \t]*include[ \t]*(<[^>\n]*>)`, Kind: KindString, Group: 1},
			{Name: "string", Pattern: `@?` + dqString, Kind: KindString, Mask: true},
			{Name: "char", Pattern: `'(?:[^'\\\n]|\\.)'`, Kind: KindString, Mask: true},
			{Name: "comment", Pattern: lineComment + `|` + blockComment, Kind: KindComment, Mask: true},
			{
				Name:    "number",
				Pattern: `\b(?:0[xX][0-9a-fA-F]+|0[bB][01]+|\d+\.?\d*(?:[eE][+-]?\d+)?)[uUlLfFdDmM]*\b`,
				Kind:    KindNumber,
			},
			{
				Name:    "type",
				Pattern: `\b(?:class|struct|enum|interface|union)[ \t]+([A-Za-z_]\w*)`,
				Kind:    KindClass,
				Group:   1,
			},
			{
				Name: "function",
				Pattern: `(?m)^[ \t]*(?:(?:static|inline|extern|virtual|explicit|constexpr|friend|public|private|` +
					`protected|internal|abstract|final|override|async|const|unsigned|signed|long|short)[ \t]+)*` +
					`(?:void|int|float|double|char|bool|boolean|long|short|unsigned|signed|auto|string|` +
					`[A-Z]\w*)[ \t*&]+([A-Za-z_]\w*)[ \t]*\(`,
				Kind:  KindFunction,
				Group: 1,
			},
		},
	},
	{
		Language:   LanguageECMAScript,
		Title:      "JavaScript / TypeScript",
		Aliases:    []string{"js", "javascript", "ts", "typescript", "jsx", "tsx"},
		Extensions: []string{".js", ".mjs", ".cjs", ".jsx", ".ts", ".tsx"},
		Rules: []Rule{
			{
				Name: "keyword",
				Pattern: `\b(?:async|await|break|case|catch|class|const|continue|debugger|default|delete|do|` +
					`else|export|extends|false|finally|for|from|function|if|import|in|instanceof|let|new|` +
					`null|of|return|static|super|switch|this|throw|true|try|typeof|undefined|var|void|` +
					`while|with|yield)\b`,
				Kind: KindKeyword,
			},
			{
				Name: "builtin",
				Pattern: `\b(?:Array|Boolean|console|Date|document|Error|JSON|Map|Math|Number|Object|` +
					`parseFloat|parseInt|Promise|RegExp|require|Set|String|Symbol|window)\b`,
				Kind: KindBuiltin,
			},
			{Name: "operator", Pattern: cOperators, Kind: KindOperator},
			{
				Name: "string",
				Pattern: backtick + `(?:[^` + backtick + `\\]|\\.)*` + backtick +
					`|` + dqString + `|` + sqString,
				Kind: KindString,
				Mask: true,
			},
			{Name: "comment", Pattern: lineComment + `|` + blockComment, Kind: KindComment, Mask: true},
			{
				Name:    "number",
				Pattern: `\b(?:0[xX][0-9a-fA-F]+|0[bB][01]+|0[oO][0-7]+|\d+\.?\d*(?:[eE][+-]?\d+)?n?)\b`,
				Kind:    KindNumber,
			},
			{Name: "function", Pattern: `\bfunction\b[ \t]*\*?[ \t]*([A-Za-z_$][\w$]*)`, Kind: KindFunction, Group: 1},
			{Name: "class", Pattern: `\bclass[ \t]+([A-Za-z_$][\w$]*)`, Kind: KindClass, Group: 1},
		},
	},
	{
		Language:   LanguageMarkup,
		Title:      "HTML",
		Aliases:    []string{"html", "xhtml", "htm"},
		Extensions: []string{".html", ".htm", ".xhtml"},
		Rules: []Rule{
			{Name: "doctype", Pattern: `(?i)<!doctype[^>]*>`, Kind: KindKeyword},
			{Name: "tag", Pattern: `</?[A-Za-z][\w:-]*[^>]*>`, Kind: KindKeyword},
			{Name: "attribute", Pattern: `\s([A-Za-z_:][\w:.-]*)\s*=`, Kind: KindBuiltin, Group: 1},
			{Name: "string", Pattern: `=\s*("[^"]*"|'[^']*')`, Kind: KindString, Group: 1, Mask: true},
			{Name: "comment", Pattern: `<!--(?s:.*?)-->`, Kind: KindComment, Mask: true},
			{Name: "entity", Pattern: `&(?:[A-Za-z][A-Za-z0-9]*|#[0-9]+|#[xX][0-9a-fA-F]+);`, Kind: KindNumber},
		},
	},
}
