// Package add drives one create-record submission: optional image
// acquisition, then the submission pipeline.
package add

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/brewlog/brew/pkg/image"
	"github.com/brewlog/brew/pkg/printers"
	"github.com/brewlog/brew/pkg/recipe"
	"github.com/brewlog/brew/pkg/submit"
)

type Add struct {
	Draft recipe.Draft

	// Source acquires the image when the draft asks for one; nil means
	// submit without an image.
	Source   image.Source
	Pipeline *submit.Pipeline
}

func (n *Add) Do(ctx context.Context) error {
	if n.Pipeline == nil {
		return errors.New("can not add, no pipeline")
	}

	draft := n.Draft
	if n.Source != nil {
		acq, err := n.Source.Acquire(ctx)
		if err != nil {
			return err
		}
		switch acq.Outcome {
		case image.OutcomeAcquired:
			draft.LocalImage = acq.Ref
		case image.OutcomeDenied:
			fmt.Fprintln(os.Stderr,
				"image access was denied; grant access or submit without an image")
			draft.LocalImage = ""
		case image.OutcomeCancelled:
			draft.LocalImage = ""
		}
	}

	res, err := n.Pipeline.Submit(ctx, draft)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("added %s (%s)", res.Record.Title, res.Record.ID))
	pp.Record(res.Record)
	return nil
}
