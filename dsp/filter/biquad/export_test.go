package biquad

// ResetProcessBlockDispatch clears the cached kernel so the next ProcessBlock
// selects again from the current CPU features.
var ResetProcessBlockDispatch = resetProcessBlockDispatchForTest
