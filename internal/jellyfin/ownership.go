package jellyfin

import (
	"os"
	"os/user"
	"strconv"

	"tracksmith/internal/logging"
)

// Ownership describes the account the playlist files should belong to so
// the media server can read and manage them.
type Ownership struct {
	Enabled bool
	Owner   string
	Group   string
}

// applyOwnership chowns the playlist folder and file to the configured
// account and fixes their modes. Failures are logged, never fatal; runs on
// hosts without the jellyfin account (or without root) still produce a
// usable playlist.
func (w *Writer) applyOwnership(dir, file string) {
	if !w.Ownership.Enabled {
		return
	}

	uid, gid, err := lookupIDs(w.Ownership.Owner, w.Ownership.Group)
	if err != nil {
		w.logger.Warn("resolve playlist owner",
			logging.String("owner", w.Ownership.Owner),
			logging.String("group", w.Ownership.Group),
			logging.Error(err))
		return
	}

	for _, target := range []struct {
		path string
		mode os.FileMode
	}{
		{dir, 0o755},
		{file, 0o644},
	} {
		if err := os.Chown(target.path, uid, gid); err != nil {
			w.logger.Warn("chown playlist path", logging.String("path", target.path), logging.Error(err))
			continue
		}
		if err := os.Chmod(target.path, target.mode); err != nil {
			w.logger.Warn("chmod playlist path", logging.String("path", target.path), logging.Error(err))
		}
	}
}

func lookupIDs(owner, group string) (int, int, error) {
	usr, err := user.Lookup(owner)
	if err != nil {
		return 0, 0, err
	}
	grp, err := user.LookupGroup(group)
	if err != nil {
		return 0, 0, err
	}
	uid, err := strconv.Atoi(usr.Uid)
	if err != nil {
		return 0, 0, err
	}
	gid, err := strconv.Atoi(grp.Gid)
	if err != nil {
		return 0, 0, err
	}
	return uid, gid, nil
}
