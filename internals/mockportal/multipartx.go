package mockportal

import "mime/multipart"

// Kandidat nama field file yang umum dikirim FE/Postman.
var fileFieldCandidates = []string{"file", "files", "upload", "photo"}

// firstUploadFile mengambil satu *FileHeader pertama dari form multipart,
// dengan urutan preferensi nama field di atas.
func firstUploadFile(form *multipart.Form, candidates ...string) *multipart.FileHeader {
	if form == nil || form.File == nil {
		return nil
	}
	if len(candidates) == 0 {
		candidates = fileFieldCandidates
	}
	for _, key := range candidates {
		if fhs, ok := form.File[key]; ok {
			for _, fh := range fhs {
				if fh != nil && fh.Filename != "" {
					return fh
				}
			}
		}
	}
	return nil
}
