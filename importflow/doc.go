// Package importflow implements the transient paste-import dialog: it
// shows the classifier's parallel interpretations of pasted text, lets
// the user edit the raw input and pick the interpretation they meant,
// and resolves exactly once with the chosen clean sequence.
package importflow
