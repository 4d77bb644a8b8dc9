// Package arraysum holds a fixed-size array of small random integers and
// reduces it either sequentially or by splitting the index range into
// contiguous chunks summed by independent goroutines.
//
// The partition rule is deterministic: with chunkSize = size / threads,
// chunk i covers [i*chunkSize, (i+1)*chunkSize) and the last chunk extends
// to the end of the array, absorbing the remainder of the division.
package arraysum
