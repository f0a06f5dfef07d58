// Package fft implements the complex-valued FFT engine that backs bigfft's
// right-angle convolution multiplier: a radix-4 decimation-in-frequency
// transform for power-of-two lengths, a radix-3 combine for 3*2^n lengths,
// and the roots-of-unity caches both share.
//
// Everything here operates on plain []complex128 buffers in natural
// (unscrambled) order on both sides of the transform — callers never see a
// bit-reversal permutation leak out of this package.
package fft
