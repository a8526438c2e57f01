package match

import (
	"log/slog"

	"tracksmith/internal/library"
	"tracksmith/internal/logging"
	"tracksmith/internal/textutil"
)

// Retriever scores library files against queries. It holds no per-query
// state; the library is rescanned on every call.
type Retriever struct {
	library library.Source
	logger  *slog.Logger
}

// NewRetriever creates a Retriever over the given library source.
func NewRetriever(source library.Source, logger *slog.Logger) *Retriever {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Retriever{library: source, logger: logger}
}

// Retrieve walks the library and returns every file clearing the thresholds,
// sorted by the composite tie-break key. An unreadable library root yields an
// empty result, not an error; unreadable subdirectories are skipped.
func (r *Retriever) Retrieve(query Query, th Thresholds) []Candidate {
	artists, err := r.library.ArtistDirs()
	if err != nil {
		r.logger.Warn("music library is not readable", logging.Error(err))
		return nil
	}

	queryArtist := textutil.Normalize(query.Artist)
	queryTitle := textutil.Normalize(query.Title)

	var candidates []Candidate
	for _, artistDir := range artists {
		folderSim := textutil.Similarity(queryArtist, artistDir)
		// Prune the whole subtree before any per-file work; this is what
		// keeps full-library scans tractable.
		if folderSim < th.MinArtist {
			continue
		}

		albums, err := r.library.AlbumDirs(artistDir)
		if err != nil {
			r.logger.Warn("skipping unreadable artist folder",
				logging.String("artist_dir", artistDir), logging.Error(err))
			continue
		}

		for _, albumDir := range albums {
			files, err := r.library.TrackFiles(artistDir, albumDir)
			if err != nil {
				r.logger.Warn("skipping unreadable album folder",
					logging.String("artist_dir", artistDir),
					logging.String("album_dir", albumDir), logging.Error(err))
				continue
			}

			for _, file := range files {
				entry := library.ParseEntry(artistDir, albumDir, file)
				fileArtistSim := textutil.Similarity(queryArtist, entry.Artist)
				titleSim := textutil.Similarity(queryTitle, entry.Title)

				combined := (folderSim*folderArtistWeight +
					fileArtistSim*fileArtistWeight +
					titleSim*titleWeight) / weightSum
				if combined < th.MinCombined || titleSim < th.MinTitle {
					continue
				}

				score := combined
				if entry.FLAC {
					score += flacBonus
				}

				candidates = append(candidates, Candidate{
					Path:      r.library.FilePath(artistDir, albumDir, file),
					Artist:    entry.Artist,
					Title:     entry.Title,
					Filename:  file,
					Score:     score,
					ArtistSim: folderSim,
					TitleSim:  titleSim,
					Live:      entry.Live,
					FLAC:      entry.FLAC,
				})
			}
		}
	}

	SortCandidates(candidates)
	return candidates
}
