// Package jellyfin writes resolved playlists in Jellyfin's native format and
// probes common Jellyfin installation paths.
//
// A playlist lives in its own folder under the server's playlist data
// directory as playlist.xml with an Item/PlaylistItems/PlaylistItem/Path
// document shape. Writes are guarded by a file lock so concurrent runs
// cannot interleave on the same playlist, and the folder is chowned to the
// media server account on a best-effort basis.
package jellyfin
