package geomtool

// ShowTextCenteredAndRotated draws s centred on both axes about the current
// origin of cv, rotated by angle radians. Callers translate to the label
// position first; they never need to measure the text.
func ShowTextCenteredAndRotated(cv Canvas, s string, angle float64) {
	if s == "" {
		return
	}
	cv.Push()
	defer cv.Pop()
	cv.Rotate(angle)
	cv.DrawStringAnchored(s, 0, 0, 0.5, 0.5)
}
