package requestgen

import (
	"strconv"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/h1/kv"
)

func Headers(n int) *kv.Storage {
	hdrs := kv.NewPrealloc(n)

	for i := 0; i < n-1; i++ {
		hdrs.Add("some-random-header-name-nobody-cares-about"+strconv.Itoa(i), uniuri.NewLen(100))
	}

	return hdrs.Add("Host", "localhost")
}

func HeadersBlock(hdrs *kv.Storage) (buff []byte) {
	for key, value := range hdrs.Iter() {
		buff = append(buff, key+": "+value+"\r\n"...)
	}

	return buff
}

func Generate(target string, hdrs *kv.Storage) (request []byte) {
	request = append(request, "GET "+target+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}

// Split partitions the request into consecutive parts of at most n bytes,
// emulating an arbitrarily fragmenting transport.
func Split(request []byte, n int) (parts [][]byte) {
	for i := 0; i < len(request); i += n {
		end := i + n
		if end > len(request) {
			end = len(request)
		}

		parts = append(parts, request[i:end])
	}

	return parts
}
