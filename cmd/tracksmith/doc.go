// Command tracksmith converts playlist files into Jellyfin playlists by
// fuzzy-matching each requested track against an artist/album organized
// music library.
package main
