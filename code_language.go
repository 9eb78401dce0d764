package notion

// CodeLanguage is the syntax highlighting language of a code block.
type CodeLanguage string

const (
	PlainText  CodeLanguage = "plain text"
	Bash       CodeLanguage = "bash"
	C          CodeLanguage = "c"
	CPlusPlus  CodeLanguage = "c++"
	CSharp     CodeLanguage = "c#"
	CSS        CodeLanguage = "css"
	Diff       CodeLanguage = "diff"
	Docker     CodeLanguage = "docker"
	Elixir     CodeLanguage = "elixir"
	Go         CodeLanguage = "go"
	GraphQL    CodeLanguage = "graphql"
	Haskell    CodeLanguage = "haskell"
	HTML       CodeLanguage = "html"
	Java       CodeLanguage = "java"
	JavaScript CodeLanguage = "javascript"
	JSON       CodeLanguage = "json"
	Kotlin     CodeLanguage = "kotlin"
	Lua        CodeLanguage = "lua"
	Makefile   CodeLanguage = "makefile"
	Markdown   CodeLanguage = "markdown"
	Mermaid    CodeLanguage = "mermaid"
	PHP        CodeLanguage = "php"
	Python     CodeLanguage = "python"
	Ruby       CodeLanguage = "ruby"
	Rust       CodeLanguage = "rust"
	Scala      CodeLanguage = "scala"
	Shell      CodeLanguage = "shell"
	SQL        CodeLanguage = "sql"
	Swift      CodeLanguage = "swift"
	TypeScript CodeLanguage = "typescript"
	YAML       CodeLanguage = "yaml"
)
