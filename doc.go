/*
Package workshop is the Go edition of the GitHub Actions workshop sample.

It ships two independent programs behind one binary:

  - The sample app ("workshop serve"): an HTTP server on port 3000 that
    answers GET / with "Hello, GitHub Actions Workshop!". See package server.
  - The greeter action ("workshop greet"): a custom action that reads the
    "name" input and prints "Hello, <name>!", reporting failures to the
    runner. See package action.

Both share the greeting text in package greeting and nothing else.
*/
package workshop
