/*
Package action implements the workshop greeter as a GitHub Action.

The greeter reads the "name" input and prints "Hello, <name>!". Failures are
reported through the host instead of crashing the process:

	host := action.NewGitHubHost(action.WithRequired(action.InputName))
	os.Exit(action.NewGreeter(host, host).Run())

Inputs and Reporter are small ports so the greeter can be driven by other
hosts, including test doubles.
*/
package action
