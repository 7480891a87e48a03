// Package noteapp is the composition root of the notes application.
//
// It wires the domain (categories of notes held in memory by core.Service)
// to the file store that persists them as a single data file.
//
// The data file is a JSON array of flat records, one per note, in category
// order. YAML and CSV are picked by file extension. Saves replace the file
// atomically and may be committed to git.
//
// Usage:
//
//	svc, err := noteapp.New("notes_data.json",
//		noteapp.WithAutoInit(true),
//		noteapp.WithLogger(logger),
//	)
//	if err := svc.Load(ctx); err != nil { ... }
//
//	_, err = svc.CreateNote("Report", "Q1 numbers", "Работа")
//	err = svc.Save(ctx)
package noteapp
