package util

func IntPtr(v int) *int { return &v }
