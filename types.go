package pocketfft

import "github.com/MeKo-Christian/algo-pocketfft/internal/fftypes"

// Complex is a type constraint for complex number types supported by the
// transforms. The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type constraint for floating-point types used in real
// transforms. The canonical definition is in internal/fftypes.
type Float = fftypes.Float
