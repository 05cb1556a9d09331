// Package caesar implements the Caesar substitution cipher.
//
// Only the 26 ASCII letters are rotated. Position lookup is plain arithmetic
// on the character code relative to 'a' or 'A', so no alphabet table is
// built and the package holds no mutable state. Transform is safe to call
// from multiple goroutines.
//
// # Keys
//
// A key is a shift between 0 and MaxKey inclusive. Direction is chosen with
// Mode, never with the sign of the key, so negative keys are rejected:
//
//	out, err := caesar.Transform("XYZ", 3, caesar.Encrypt) // "ABC"
//	back, _ := caesar.Transform(out, 3, caesar.Decrypt)    // "XYZ"
//
// This is a teaching tool. It offers no confidentiality at all.
package caesar
