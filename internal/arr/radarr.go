package arr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Radarr is a client for the Radarr v3 API.
type Radarr struct {
	client
}

// NewRadarr creates a Radarr client.
func NewRadarr(baseURL, apiKey string, opts ...Option) *Radarr {
	return &Radarr{client: newClient(baseURL, apiKey, "radarr", opts...)}
}

// Movies lists all movies in the library.
func (r *Radarr) Movies(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	if err := r.get(ctx, "/movie", nil, &movies); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// Movie fetches one movie by its Radarr ID.
func (r *Radarr) Movie(ctx context.Context, id int) (*Movie, error) {
	var movie Movie
	if err := r.get(ctx, "/movie/"+strconv.Itoa(id), nil, &movie); err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}
	return &movie, nil
}

// Lookup searches Radarr's metadata source for movies matching term.
func (r *Radarr) Lookup(ctx context.Context, term string) ([]Movie, error) {
	query := url.Values{"term": []string{term}}
	var movies []Movie
	if err := r.get(ctx, "/movie/lookup", query, &movies); err != nil {
		return nil, fmt.Errorf("lookup %q: %w", term, err)
	}
	return movies, nil
}

// Add adds a movie to the library.
func (r *Radarr) Add(ctx context.Context, movie Movie) (*Movie, error) {
	var added Movie
	if err := r.post(ctx, "/movie", movie, &added); err != nil {
		return nil, fmt.Errorf("add movie %q: %w", movie.Title, err)
	}
	return &added, nil
}

// Update replaces a movie record (used for monitored-flag changes).
func (r *Radarr) Update(ctx context.Context, movie Movie) error {
	if err := r.put(ctx, "/movie", movie, nil); err != nil {
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}
	return nil
}

// Delete removes one movie from the library.
func (r *Radarr) Delete(ctx context.Context, id int, deleteFiles, addExclusion bool) error {
	query := url.Values{
		"deleteFiles":        []string{strconv.FormatBool(deleteFiles)},
		"addImportExclusion": []string{strconv.FormatBool(addExclusion)},
	}
	if err := r.delete(ctx, "/movie/"+strconv.Itoa(id), query); err != nil {
		return fmt.Errorf("delete movie %d: %w", id, err)
	}
	return nil
}

// DeleteBulk removes multiple movies in one editor call.
func (r *Radarr) DeleteBulk(ctx context.Context, ids []int, deleteFiles, addExclusion bool) error {
	body := map[string]any{
		"movieIds":           ids,
		"deleteFiles":        deleteFiles,
		"addImportExclusion": addExclusion,
	}
	if err := r.deleteBody(ctx, "/movie/editor", body); err != nil {
		return fmt.Errorf("bulk delete %d movies: %w", len(ids), err)
	}
	return nil
}

// MovieFiles lists the files on disk for a movie.
func (r *Radarr) MovieFiles(ctx context.Context, movieID int) ([]MovieFile, error) {
	query := url.Values{"movieId": []string{strconv.Itoa(movieID)}}
	var files []MovieFile
	if err := r.get(ctx, "/moviefile", query, &files); err != nil {
		return nil, fmt.Errorf("list files for movie %d: %w", movieID, err)
	}
	return files, nil
}

// DeleteMovieFile removes one movie file from disk.
func (r *Radarr) DeleteMovieFile(ctx context.Context, fileID int) error {
	if err := r.delete(ctx, "/moviefile/"+strconv.Itoa(fileID), nil); err != nil {
		return fmt.Errorf("delete movie file %d: %w", fileID, err)
	}
	return nil
}

// Tags lists all tags known to Radarr.
func (r *Radarr) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := r.get(ctx, "/tag", nil, &tags); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// CreateTag creates a tag with the given label.
func (r *Radarr) CreateTag(ctx context.Context, label string) (Tag, error) {
	var tag Tag
	if err := r.post(ctx, "/tag", map[string]string{"label": label}, &tag); err != nil {
		return Tag{}, fmt.Errorf("create tag %q: %w", label, err)
	}
	return tag, nil
}

// QualityProfiles lists the configured quality profiles.
func (r *Radarr) QualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var profiles []QualityProfile
	if err := r.get(ctx, "/qualityprofile", nil, &profiles); err != nil {
		return nil, fmt.Errorf("list quality profiles: %w", err)
	}
	return profiles, nil
}
