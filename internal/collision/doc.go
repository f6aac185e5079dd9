// Package collision decides what to do when a file's computed target path
// is already occupied.
//
// A candidate that is the source itself means the file is already filed
// correctly. An occupant with byte-identical content makes the move
// redundant; the engine never deletes originals, so the source is simply
// left where it is. An occupant with different content forces a
// disambiguated name: _1, _2, ... appended to the stem until a free slot
// is found, with the real extension preserved. The existence loop is
// bounded; callers hold a per-directory lock, so check-then-act inside
// one directory cannot race.
package collision
