package forms

// NoticeKind distinguishes success and error notices.
type NoticeKind string

const (
	NoticeNone    NoticeKind = ""
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the transient message shown after a request resolves.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

func successNotice(msg string) Notice {
	return Notice{Kind: NoticeSuccess, Title: "Success", Message: msg}
}

func errorNotice(msg string) Notice {
	return Notice{Kind: NoticeError, Title: "Error", Message: msg}
}

// fieldErrors is the per-field message map shared by the forms.
type fieldErrors map[string]string

func (f fieldErrors) copy() map[string]string {
	if len(f) == 0 {
		return nil
	}
	out := make(map[string]string, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
