// Package editor binds the highlighting engine to an editable host text
// surface and keeps styling synchronized as the text changes.
//
// The package owns the update discipline, not the widget: a host
// adapter implements Surface, and a Binding drives it through atomic
// refresh passes that capture cursor/selection state, re-run the
// engine, install the result and restore the captured state. Host
// notifications fired as a side effect of installing styling are
// suppressed, so observers only ever see changes the application
// actually initiated.
package editor
