package todoist

import "context"

// Capability interfaces. Each resource kind implements only the subset
// appropriate to it; read-only kinds (User, Collaborator, Reminder,
// LiveNotification) implement none.
type (
	// Creatable builds a creation command carrying a temporary ID.
	Creatable interface{ Create() Command }

	// Updatable builds an update command keyed by permanent ID.
	Updatable interface{ Update() Command }

	// Deletable builds a delete command.
	Deletable interface{ Delete() Command }

	// Archivable toggles the archived flag.
	Archivable interface {
		Archive() Command
		Unarchive() Command
	}

	// Closable checks a task off.
	Closable interface{ Close() Command }

	// Completable toggles the completed state.
	Completable interface {
		Complete() Command
		Uncomplete() Command
	}
)

// Transaction accumulates commands bound to one client and commits them as
// a single batch. While a transaction is open it holds the client's
// transaction lock, so no second transaction can interleave commands over
// the same client.
type Transaction struct {
	client   *Client
	commands []Command
	done     bool
}

// Begin opens a transaction, blocking until any previous transaction on
// this client has committed or rolled back.
func (c *Client) Begin() *Transaction {
	c.txMu.Lock()

	return &Transaction{client: c}
}

// Exec stages an already-built command. Staging order is preserved and is
// the order submitted. Returns the transaction for chaining.
func (t *Transaction) Exec(cmd Command) *Transaction {
	t.commands = append(t.commands, cmd)

	return t
}

// Create stages a creation command for the given resource.
func (t *Transaction) Create(r Creatable) *Transaction {
	return t.Exec(r.Create())
}

// Update stages an update command for the given resource.
func (t *Transaction) Update(r Updatable) *Transaction {
	return t.Exec(r.Update())
}

// Delete stages a delete command for the given resource.
func (t *Transaction) Delete(r Deletable) *Transaction {
	return t.Exec(r.Delete())
}

// Archive stages an archive command for the given resource.
func (t *Transaction) Archive(r Archivable) *Transaction {
	return t.Exec(r.Archive())
}

// Unarchive stages an unarchive command for the given resource.
func (t *Transaction) Unarchive(r Archivable) *Transaction {
	return t.Exec(r.Unarchive())
}

// Close stages a close command for the given task.
func (t *Transaction) Close(r Closable) *Transaction {
	return t.Exec(r.Close())
}

// Complete stages a complete command for the given task.
func (t *Transaction) Complete(r Completable) *Transaction {
	return t.Exec(r.Complete())
}

// Commit sends the staged batch in one request and reconciles per-command
// statuses. If every command succeeded the raw response is returned; its
// TempIDMappings tell the caller the real IDs of newly created entities.
//
// If one or more commands failed, the error is a *CommandErrors listing
// each failing command's UUID and structured error — and the response is
// still returned, because the server applies commands independently:
// partial success is the normal failure mode, and mappings for the
// commands that did succeed remain valid. Failed batches are never retried
// here; resubmitting is a caller decision.
func (t *Transaction) Commit(ctx context.Context) (*CommandResponse, error) {
	if t.done {
		return nil, ErrTransactionDone
	}

	t.done = true
	defer t.client.txMu.Unlock()

	resp, err := t.client.Send(ctx, t.commands)
	if err != nil {
		return nil, err
	}

	if err := checkResponse(resp); err != nil {
		return resp, err
	}

	return resp, nil
}

// Rollback abandons the transaction without sending anything, releasing
// the client for the next transaction. Rollback after Commit is a no-op.
func (t *Transaction) Rollback() {
	if t.done {
		return
	}

	t.done = true
	t.client.txMu.Unlock()
}
