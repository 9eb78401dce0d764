package notion

// UserType tells people and bots apart.
type UserType string

const (
	PersonUser UserType = "person"
	BotUser    UserType = "bot"
)

// PartialUser is the reference to a user found in created_by,
// last_edited_by and similar fields.
type PartialUser struct {
	Object string `json:"object"`
	ID     UserID `json:"id"`
}

// UserRef creates a reference to the user with the given id.
func UserRef(id UserID) PartialUser {
	return PartialUser{Object: "user", ID: id}
}

// User is the full representation of a person or bot.
type User struct {
	Object    string   `json:"object"`
	ID        UserID   `json:"id"`
	Type      UserType `json:"type,omitempty"`
	Name      string   `json:"name,omitempty"`
	AvatarURL string   `json:"avatar_url,omitempty"`
	Person    *Person  `json:"person,omitempty"`
	Bot       *Bot     `json:"bot,omitempty"`
}

// Person holds the details of a user of type "person".
type Person struct {
	Email string `json:"email,omitempty"`
}

// Bot holds the details of a user of type "bot".
type Bot struct {
	Owner         *BotOwner `json:"owner,omitempty"`
	WorkspaceName string    `json:"workspace_name,omitempty"`
}

// BotOwner is either a user or the workspace.
type BotOwner struct {
	Type      string `json:"type"`
	Workspace bool   `json:"workspace,omitempty"`
	User      *User  `json:"user,omitempty"`
}
