package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/foliodev/folio/internal/contact"
)

// contactTimeout bounds the form submission request.
const contactTimeout = 15 * time.Second

// ContactOptions holds options for the contact command.
type ContactOptions struct {
	Name    string
	Email   string
	Message string
	DryRun  bool
	Out     io.Writer
}

// Contact composes a message, prompting for any fields not supplied,
// and submits it to the configured endpoint. The fields pass through
// exactly as entered; the endpoint owns validation and delivery.
func Contact(opts ContactOptions) error {
	cfg, _, err := loadConfigAndStore()
	if err != nil {
		return err
	}

	msg := contact.Message{
		Name:  opts.Name,
		Email: opts.Email,
		Body:  opts.Message,
	}

	if msg.Name == "" || msg.Email == "" || msg.Body == "" {
		if err := contact.NewForm(&msg).Run(); err != nil {
			return err
		}
	}

	submitter := contact.NewSubmitter(cfg.Contact.Endpoint, contactTimeout)

	if opts.DryRun || !submitter.HasEndpoint() {
		fmt.Fprintln(opts.Out, msg.Render())
		if !submitter.HasEndpoint() {
			fmt.Fprintln(opts.Out, "No form endpoint configured; message not sent.")
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), contactTimeout)
	defer cancel()

	if err := submitter.Submit(ctx, msg); err != nil {
		return err
	}
	fmt.Fprintln(opts.Out, "Message sent.")
	return nil
}
