package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userhub/internal/api"
	"github.com/dmitrijs2005/userhub/internal/models"
)

// renderDocuments reloads and prints the full document list. Called after
// every mutation instead of patching the previous listing: the server owns
// the data, the screen only holds a per-visit cache.
func (a *App) renderDocuments(ctx context.Context) error {
	docs, err := a.docs.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Could not load documents"))
		return nil
	}

	if len(docs) == 0 {
		fmt.Fprintln(a.out, "No documents yet.")
		return nil
	}
	for _, d := range docs {
		switch d.DocumentType {
		case models.DocumentNote:
			fmt.Fprintf(a.out, "%4d  [%s]  %s\n", d.ID, d.DocumentType, d.Title)
		default:
			fmt.Fprintf(a.out, "%4d  [%s]  %s  (%s, %d bytes)\n", d.ID, d.DocumentType, d.Title, d.FileName, d.FileSize)
		}
	}
	return nil
}

func (a *App) DocumentsScreen(ctx context.Context) error {
	if err := a.renderDocuments(ctx); err != nil {
		return err
	}
	if n, err := a.docs.Count(ctx); err == nil {
		fmt.Fprintf(a.out, "Total: %d\n", n)
	}
	return nil
}

func (a *App) AddNoteScreen(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Note title", a.out)
	if err != nil {
		return err
	}
	if err := validateRequired("title", title); err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}
	content, err := GetMultiline(a.reader, "Note text", a.out)
	if err != nil {
		return err
	}

	if _, err := a.docs.CreateNote(ctx, title, content); err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Could not create the note"))
		return nil
	}
	return a.renderDocuments(ctx)
}

func (a *App) UploadScreen(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to the file", a.out)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	for _, check := range []error{validateRequired("path", path), validateRequired("title", title)} {
		if check != nil {
			fmt.Fprintln(a.out, check)
			return nil
		}
	}

	if _, err := a.docs.Upload(ctx, title, path); err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Upload failed"))
		return nil
	}
	return a.renderDocuments(ctx)
}

func (a *App) EditDocumentScreen(ctx context.Context) error {
	id, err := GetID(a.reader, "Document id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}
	title, err := getSimpleText(a.reader, "New title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "New text (notes only)", a.out)
	if err != nil {
		return err
	}

	if _, err := a.docs.Update(ctx, id, title, content); err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Could not update the document"))
		return nil
	}
	return a.renderDocuments(ctx)
}

func (a *App) DeleteDocumentScreen(ctx context.Context) error {
	id, err := GetID(a.reader, "Document id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	msg, err := a.docs.Delete(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Could not delete the document"))
		return nil
	}
	fmt.Fprintln(a.out, msg)
	return a.renderDocuments(ctx)
}

func (a *App) DownloadScreen(ctx context.Context) error {
	fileName, err := getSimpleText(a.reader, "Stored file name", a.out)
	if err != nil {
		return err
	}
	dest, err := getSimpleText(a.reader, "Save to", a.out)
	if err != nil {
		return err
	}
	for _, check := range []error{validateRequired("file name", fileName), validateRequired("destination", dest)} {
		if check != nil {
			fmt.Fprintln(a.out, check)
			return nil
		}
	}

	if err := a.docs.Download(ctx, fileName, dest); err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Download failed"))
		return nil
	}
	fmt.Fprintf(a.out, "Saved to %s\n", dest)
	return nil
}
