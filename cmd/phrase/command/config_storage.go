package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-phrase/internal/message"
	"github.com/pixil98/go-phrase/internal/storage"
)

type StorageConfig struct {
	Messages AssetConfig[*message.Message]    `json:"messages"`
	Pronouns AssetConfig[*message.PronounSet] `json:"pronouns"`
}

// BuildLibrary loads both asset stores and returns the library plus a
// reload manager that refreshes them from disk.
func (c *StorageConfig) BuildLibrary() (*message.Library, *storage.ReloadManager, error) {
	msgs, err := c.Messages.BuildFileStore()
	if err != nil {
		return nil, nil, fmt.Errorf("creating message store: %w", err)
	}
	pronouns, err := c.Pronouns.BuildFileStore()
	if err != nil {
		return nil, nil, fmt.Errorf("creating pronoun store: %w", err)
	}

	library := &message.Library{
		Messages: msgs,
		Pronouns: pronouns,
	}

	reloads := storage.NewReloadManager(map[string]storage.Reloader{
		"message": msgs,
		"pronoun": pronouns,
	})

	return library, reloads, nil
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Messages.Validate("messages"))
	el.Add(c.Pronouns.Validate("pronouns"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
