// Package cli provides the interactive renewadmin console.
//
// It wires configuration, the local session database, the REST services and
// an interactive REPL. Every protected command passes through the session
// guard; list commands open a screen that stays active (and keeps its
// session watch armed) until another list is opened or the operator logs
// out.
//
// Commands:
//   - login / logout / whoami / forget
//   - list <resource>, next, prev, search <text>, sort <field>, limit <n>,
//     refresh, show <id>
//   - add <resource>, edit <resource> <id>, delete <resource> <id>
//   - report preview|download, remind <service-id>, walog
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
