package command

// Kind names a command. Kinds are plain strings so the undo policy can be
// read from the settings file.
type Kind string

const (
	KindAddContact    Kind = "add_contact"
	KindAddEvent      Kind = "add_event"
	KindEditContact   Kind = "edit_contact"
	KindEditEvent     Kind = "edit_event"
	KindDeleteContact Kind = "delete_contact"
	KindDeleteEvent   Kind = "delete_event"
	KindLink          Kind = "link"
	KindUnlink        Kind = "unlink"
	KindFindContact   Kind = "find_contact"
	KindFindEvent     Kind = "find_event"
	KindList          Kind = "list"
	KindShow          Kind = "show"
	KindHide          Kind = "hide"
	KindSortContact   Kind = "sort_contact"
	KindSortEvent     Kind = "sort_event"
	KindClear         Kind = "clear"
	KindUndo          Kind = "undo"
	KindRedo          Kind = "redo"
	KindHistory       Kind = "history"
	KindClearHistory  Kind = "clear_history"
	KindImport        Kind = "import"
	KindExport        Kind = "export"
	KindHelp          Kind = "help"
	KindExit          Kind = "exit"
)

// AllKinds lists every command kind.
func AllKinds() []Kind {
	return []Kind{
		KindAddContact, KindAddEvent, KindEditContact, KindEditEvent,
		KindDeleteContact, KindDeleteEvent, KindLink, KindUnlink,
		KindFindContact, KindFindEvent, KindList, KindShow, KindHide,
		KindSortContact, KindSortEvent, KindClear, KindUndo, KindRedo,
		KindHistory, KindClearHistory, KindImport, KindExport, KindHelp, KindExit,
	}
}

// changesBook reports whether a successful command of kind k may have
// modified the contacts or events.
func changesBook(k Kind) bool {
	switch k {
	case KindAddContact, KindAddEvent, KindEditContact, KindEditEvent,
		KindDeleteContact, KindDeleteEvent, KindLink, KindUnlink,
		KindSortContact, KindSortEvent, KindClear, KindImport,
		KindUndo, KindRedo:
		return true
	}
	return false
}

// controlsHistory reports whether k moves or resets the history cursor.
// Such commands must never commit a snapshot themselves.
func controlsHistory(k Kind) bool {
	return k == KindUndo || k == KindRedo || k == KindHistory || k == KindClearHistory
}
