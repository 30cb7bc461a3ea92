package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcase/plumbjobs/internal/export"
	"github.com/rcase/plumbjobs/internal/model"
)

// QuickRefs returns quick references matching the free-text query (title,
// tag, and body), newest first. An empty query returns everything.
func (a *App) QuickRefs(query string) []*model.QuickReference {
	a.mu.Lock()
	defer a.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))

	var out []*model.QuickReference
	for _, r := range a.quickRefs {
		if query != "" {
			hay := strings.ToLower(r.Title + " " + r.Tag + " " + r.Body)
			if !strings.Contains(hay, query) {
				continue
			}
		}
		copied := *r
		out = append(out, &copied)
	}
	return out
}

// CreateQuickRef adds a quick reference. Title and body are required.
func (a *App) CreateQuickRef(ctx context.Context, title, tag, body string) (*model.QuickReference, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, fmt.Errorf("%w: add at least a title and some content", ErrValidation)
	}

	ref := &model.QuickReference{
		ID:        model.NewID(),
		Title:     title,
		Tag:       strings.TrimSpace(tag),
		Body:      body,
		CreatedAt: a.now(),
	}
	a.quickRefs = append([]*model.QuickReference{ref}, a.quickRefs...)

	if err := a.save(ctx); err != nil {
		return nil, err
	}
	copied := *ref
	return &copied, nil
}

// UpdateQuickRef edits a quick reference. Title and body are required.
func (a *App) UpdateQuickRef(ctx context.Context, id, title, tag, body string) (*model.QuickReference, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, fmt.Errorf("%w: add at least a title and some content", ErrValidation)
	}

	for _, r := range a.quickRefs {
		if r.ID == id {
			r.Title = title
			r.Tag = strings.TrimSpace(tag)
			r.Body = body
			if err := a.save(ctx); err != nil {
				return nil, err
			}
			copied := *r
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: quick reference %s", ErrNotFound, id)
}

// DeleteQuickRef removes a quick reference.
func (a *App) DeleteQuickRef(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, r := range a.quickRefs {
		if r.ID == id {
			a.quickRefs = append(a.quickRefs[:i], a.quickRefs[i+1:]...)
			return a.save(ctx)
		}
	}
	return fmt.Errorf("%w: quick reference %s", ErrNotFound, id)
}

// QuickRefText renders a quick reference in the fixed clipboard format.
func (a *App) QuickRefText(id string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, r := range a.quickRefs {
		if r.ID == id {
			return export.QuickRefText(r), nil
		}
	}
	return "", fmt.Errorf("%w: quick reference %s", ErrNotFound, id)
}
