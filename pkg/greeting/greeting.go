/*
Package greeting holds the text shared by the workshop server and the greeter action.

Both values are fixed: the server always answers with WorkshopMessage and the
action always formats its input with For. Nothing here reads configuration.
*/
package greeting

// WorkshopMessage is the body served on GET /.
const WorkshopMessage = "Hello, GitHub Actions Workshop!"

// For returns the greeting line for name.
// The name is used verbatim; an empty name yields "Hello, !".
func For(name string) string {
	return "Hello, " + name + "!"
}
