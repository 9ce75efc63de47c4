// Package mp3 drives a serial MP3 player module (GD3300D).
//
// A Player writes command frames to a Transport, pacing every command with
// a settle delay before and a processing delay after, as the module needs
// time to handle each command. Responses are not read automatically: the
// caller polls Available and then reads frames with ReadFrame or Answer.
//
//	p := mp3.NewPlayer(mp3.NewStreamTransport(port))
//	p.Init(ctx)
//	p.PlayIndexVolume(ctx, 1, 20)
//	p.QueryStatus(ctx)
//	if p.Available() > 0 {
//		answer, err := p.Answer(ctx)
//		...
//	}
package mp3
