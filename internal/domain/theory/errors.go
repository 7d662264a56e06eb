package theory

import "errors"

// ErrSpellingGap marks a scale in which some degree could not be spelled
// with the next letter of the cycle. It is recoverable: the scale is still
// built using primary spellings for those degrees.
var ErrSpellingGap = errors.New("no spelling continues the letter cycle")
